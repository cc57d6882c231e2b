// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the in-memory election core: the registry,
the per-election state machine and the vote tally.

# Lifecycle

Elections progress through three states: setup → voting → completed

	reg := election.NewRegistry()
	e, err := reg.CreateElection("Class President", 2)
	e.SetCandidate(0, "Alice", "alice.jpg", "star.png")
	e.SetCandidate(1, "Bob", "bob.jpg", "moon.png")
	err = e.ValidateAndStart(loader)  // setup → voting
	err = e.CastVote("Alice")
	err = e.EndVoting()               // voting → completed
	results, err := e.RankedResults()
	snap, err := e.Export(time.Now())

There are no backward transitions. Candidates can only be changed during
setup and the tally only exists once voting has started.

# Errors

Failures are typed so callers can branch with errors.As:

  - DuplicateNameError, InvalidCandidateCountError, ErrEmptyName: registry
  - SlotOutOfRangeError: bad slot index
  - IncompleteCandidateError, DuplicateCandidateNameError, ResourceLoadError: start validation
  - UnknownCandidateError: vote for a name not on the roster
  - InvalidStateError: operation not allowed in the current status
  - ErrNotFound: lookup of a missing election

# Concurrency

Nothing in this package locks. The HTTP layer serialises all calls.
*/
package election
