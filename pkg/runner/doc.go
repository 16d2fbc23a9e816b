/*
Package runner implements the console side of the Marvin engine.

It reads a seed from an input stream, sanitizes it, asks the engine for a fingerprint and
presents the outcome through a pluggable handler. Handlers decouple how results are shown
(plain text, rendered markdown, NDJSON) from how they are computed.

# Key Components

  - Runner: reads one seed and reduces it.
  - OutputHandler: decouples how results are presented.
  - TextHandler: a standard implementation for interactive CLI usage.
  - JSONHandler: one JSON object per result, for scripts.

# Usage

	r := runner.NewRunner(
		runner.WithEngine(engine),
		runner.WithMode(domain.ModePreamble),
		runner.WithHandler(runner.NewTextHandler(os.Stdout)),
	)

	if err := r.Run(ctx, os.Stdin); err != nil {
		log.Fatal(err)
	}
*/
package runner
