package interp

import "testing"

func TestOutcomeConstructorsAndPredicates(t *testing.T) {
	if !normal().isNormal() {
		t.Error("normal() should be normal")
	}
	if normal().isReturn() || normal().isLoopSignal() {
		t.Error("normal() should not be a return or loop signal")
	}

	ret := returning(Number(1))
	if !ret.isReturn() || ret.isNormal() || ret.isLoopSignal() {
		t.Error("returning() classified incorrectly")
	}
	if ret.Value != Number(1) {
		t.Errorf("returning() value = %v, want Number(1)", ret.Value)
	}

	brk := breaking()
	if !brk.isLoopSignal() || brk.isNormal() || brk.isReturn() {
		t.Error("breaking() classified incorrectly")
	}

	cont := continuing()
	if !cont.isLoopSignal() || cont.isNormal() || cont.isReturn() {
		t.Error("continuing() classified incorrectly")
	}
}
