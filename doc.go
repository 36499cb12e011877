// Package arm64id reports the identification and feature registers of an
// arm64 CPU, and the capability words the Linux kernel exposes for it.
//
// Reading a system register the CPU does not implement raises an
// illegal-instruction trap. arm64id never executes such a read in the
// calling process: every read runs in a probe worker, a copy of the running
// executable restarted with the kernel default SIGILL disposition. A trap
// kills the worker at exactly the probe that caused it; that probe is
// reported as unsupported and a fresh worker carries on with the next one.
//
// # Worker Setup
//
// Programs using arm64id must let the worker take over before doing
// anything else:
//
//	func main() {
//	    arm64id.MaybeRunWorker(arm64id.DefaultRegistry())
//	    ...
//	}
//
// Tests that probe registers do the same from TestMain.
//
// # Full Probe
//
//	report, err := arm64id.Probe()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report) // same layout as the arm64id command
//
// # Requirement Gating
//
//	err := arm64id.Check(
//	    arm64id.RequireRegister("id_aa64zfr0_el1"),
//	    arm64id.RequirementGroup{sve, sve2},
//	)
//	var fe *arm64id.FeatureError
//	if errors.As(err, &fe) {
//	    log.Fatalf("cpu not ready: %s: %s", fe.Feature, fe.Reason)
//	}
//
// # Types
//
// [Entry] pairs a register identifier with its read routine; [Registry] is
// the ordered collection the report is built from.
//
// [Reading] is the outcome of one register probe. A register that trapped
// has Supported set to false and no Error; Error is only set when the
// worker failed for another reason.
//
// [CapabilitySet] is one decoded capability word: the recognised bit names
// and the residual unknown mask.
package arm64id
