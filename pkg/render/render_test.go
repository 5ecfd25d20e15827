package render

import "testing"

func TestOperatorLabel_TitleCasesLowercaseName(t *testing.T) {
	if got := OperatorLabel("add"); got != "Add" {
		t.Errorf("OperatorLabel(add) = %q, want Add", got)
	}
}

func TestOperatorLabel_FoldsFullWidthForm(t *testing.T) {
	if got := OperatorLabel("ａｄｄ"); got != "Add" {
		t.Errorf("OperatorLabel(full-width add) = %q, want Add", got)
	}
}

func TestOperatorLabel_EmptyStringUnchanged(t *testing.T) {
	if got := OperatorLabel(""); got != "" {
		t.Errorf("OperatorLabel(\"\") = %q, want empty string", got)
	}
}

func TestFormatExprList_JoinsWithBrackets(t *testing.T) {
	if got := FormatExprList([]string{"add(in0, in1)", "mul(in0, in1)"}); got != "[add(in0, in1), mul(in0, in1)]" {
		t.Errorf("FormatExprList() = %q", got)
	}
}

func TestFormatExprList_Empty(t *testing.T) {
	if got := FormatExprList(nil); got != "[]" {
		t.Errorf("FormatExprList(nil) = %q, want []", got)
	}
}
