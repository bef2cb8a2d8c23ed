// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting service.

# Handler Types

Each handler is a thin struct over *voting.Service:

  - VoterHandler: Login by national ID number
  - CandidateHandler: The ballot a voter may choose from
  - VotingHandler: Ballot casting
  - ResultsHandler: Tally grouped by category

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(svc)

# Voting Flow

	POST /login      → Login (returns userId, county, fullName)
	GET  /candidates → List (?voterId=, President plus the voter's county)
	POST /vote       → CastVote (201, one ballot per category)

# Error Mapping

Service errors are translated in one place:

	unknown ID number at login    → 401
	malformed input, unknown ids  → 400
	candidate outside the county  → 403
	already voted in the category → 409 (message names the category)
	store unavailable             → 503 (generic message, details logged)
*/
package handlers
