/*
Package marvin is a deterministic symbolic reduction engine: it folds an uppercase seed of
any length into a 16-letter fingerprint.

A seed is read as a preamble followed by a body. Each preamble letter selects one of six
block actions (A..F); the body is cut into 16-letter chunks, each chunk is transformed by
the action its preamble letter selects, and all transformed chunks are summed letter by
letter modulo 26.

# Concept

The engine is a pure function. The same seed always produces the same fingerprint, which
lets hosts memoise results in any ports.FingerprintCache (memory, Redis) without ever
invalidating them. It is not a cryptographic primitive.

# Key Features

  - Preamble mode: the seed picks its own actions (Reduce).
  - Implicit mode: every chunk uses action A (ReduceImplicit).
  - Explanations: every group of a reduction can be inspected (Explain).
  - Routes: a planned route over 4D planets can be fingerprinted (PlanRoute).

# Usage

	eng := marvin.New()

	fp, err := eng.Reduce(context.Background(), "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(fp) // HTVUNWOZVUNXZAPB

Failures wrap the sentinels in pkg/domain (ErrInvalidCharacter, ErrInvalidLength,
ErrInvalidAction, ErrEmptyReduction); use errors.Is to tell them apart.
*/
package marvin
