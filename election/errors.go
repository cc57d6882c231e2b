// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("election not found")
	ErrEmptyName = errors.New("election name is required")
)

// Candidate fields checked before voting can start
const (
	FieldName   = "name"
	FieldPhoto  = "photo"
	FieldSymbol = "symbol"
)

type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("an election named %q already exists", e.Name)
}

type InvalidCandidateCountError struct {
	Count int
}

func (e *InvalidCandidateCountError) Error() string {
	return fmt.Sprintf("candidate count must be between %d and %d, got %d", MinCandidates, MaxCandidates, e.Count)
}

type SlotOutOfRangeError struct {
	Index int
	Slots int
}

func (e *SlotOutOfRangeError) Error() string {
	return fmt.Sprintf("candidate slot %d out of range (election has %d slots)", e.Index, e.Slots)
}

// IncompleteCandidateError identifies the first slot that is missing a field.
type IncompleteCandidateError struct {
	Index int
	Field string
}

func (e *IncompleteCandidateError) Error() string {
	return fmt.Sprintf("candidate slot %d is missing a %s", e.Index, e.Field)
}

type DuplicateCandidateNameError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateCandidateNameError) Error() string {
	return fmt.Sprintf("candidate name %q used by slots %d and %d", e.Name, e.First, e.Second)
}

// ResourceLoadError wraps an image loading failure for one candidate.
type ResourceLoadError struct {
	CandidateIndex int
	Resource       string
	Err            error
}

func (e *ResourceLoadError) Error() string {
	return fmt.Sprintf("failed to load %s for candidate slot %d: %v", e.Resource, e.CandidateIndex, e.Err)
}

func (e *ResourceLoadError) Unwrap() error {
	return e.Err
}

type UnknownCandidateError struct {
	Name string
}

func (e *UnknownCandidateError) Error() string {
	return fmt.Sprintf("no candidate named %q", e.Name)
}

// InvalidStateError is returned when an operation is not allowed in the
// election's current status.
type InvalidStateError struct {
	Op     string
	Status Status
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s: election is %s", e.Op, e.Status)
}
