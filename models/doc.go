// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the kiosk API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: name, candidate_count
  - SetCandidateRequest: name, photo_path, symbol_path
  - CastVoteRequest: candidate
  - ExportRequest: file_name

# Response Types

Types for JSON responses:

  - Election: election summary with status and ballot count
  - ElectionWithCandidates: summary plus roster
  - CastVoteResponse: candidate, message
  - ResultsResponse: ranked results of a completed election
  - ExportResponse: written file, size and archive ID
  - ArchivedExport: one archived snapshot
  - ErrorResponse: error, message

Domain state lives in package election; these types are views of it.
*/
package models
