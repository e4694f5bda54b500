// Package demo holds the runnable scenarios the harness exposes, one per
// vendor interaction worth showing off.
//
// # Anatomy of a Demo
//
//   - Demo: A named scenario with its parameters and run function
//   - Registry: The ordered catalog dispatchers look demos up in
//   - Env: Everything a run needs, assembled once per process
//   - Params: Free-text inputs collected by a dispatcher
//   - Report: The accumulated outcome of one run
//
// # Dispatch
//
// Both entry points drive runs the same way:
//
//	registry := demo.Catalog()
//	rep, err := registry.Run(ctx, env, "plain-send", params)
//	if errors.Is(err, demo.ErrUnknownDemo) {
//	    // the name was wrong; nothing ran
//	}
//	fmt.Print(rep.String())
//
// Unknown names fail before any demo code executes. For registered demos
// the report always carries the full outcome, including the vendor's
// error text when the run failed.
//
// # Adding a Demo
//
// Declare a Demo value in its own file and register it in Catalog. Run
// functions receive everything through Env and Params; they must not
// reach for process state themselves, so a single process can serve
// concurrent runs with different parameters.
package demo
