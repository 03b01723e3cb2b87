package trace

import "testing"

func TestRecorderReportsActiveAndDoesNotPanic(t *testing.T) {
	r := New("test-session")
	defer r.Finish()

	if !r.IsActive() {
		t.Fatal("expected a started trace Recorder to report active")
	}
	r.OnCycleStart(0)
	r.OnConceptNew("<bird --> animal>")
	r.OnTaskAdd("bird. %0.90;0.90%", "Input")
	r.OnTaskRemove("raining. %0.10;0.10%", "Neglected")
	r.Append("Answer: tweety? => tweety. %0.90;0.90%")
	r.OnCycleEnd(0)
}
