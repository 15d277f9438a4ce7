// Package uitest provides testing utilities for Bubble Tea models.
//
// It combines a teatest wrapper, helpers that build key and mouse messages
// from the strings the program matches on, and a verifier for styled output.
//
// # Testing Models
//
//	func TestModel(t *testing.T) {
//	    t.Parallel()
//
//	    tm := uitest.NewTestModel(t, NewModel(), uitest.Compact)
//	    tm.Send(uitest.Key("G"))
//	    tm.Send(uitest.Key("q"))
//	    tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
//	}
//
// # Verifying Output
//
//	v := uitest.NewANSIVerifier(model.View())
//	v.ContainsPlainText(t, "Hello")
package uitest
