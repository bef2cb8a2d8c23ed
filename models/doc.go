// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - LoginRequest: id_number
  - CastVoteRequest: voterId, candidateId

# Response Types

  - LoginResponse: userId, county, fullName
  - CastVoteResponse: success, message, ballotId, category
  - ResultsResponse: per-category tallies
  - ErrorResponse: error, message

# Domain Types

  - VoterRecord: a resolved voter (internal id and county)
  - Candidate: a candidate as listed to a voter, without vote counts
  - CandidateTally: a candidate with its running vote count
  - Ballot: one recorded vote for a (voter, category) pair

# Categories

Ballot categories in ballot order:

	CategoryPresident    = "President"   (nationwide)
	CategoryGovernor     = "Governors"
	CategorySenator      = "Senators"
	CategoryNationalMP   = "Members of the National Assembly"
	CategoryCountyMember = "Members of County Assemblies"

Every category except President is scoped to the voter's county.
*/
package models
