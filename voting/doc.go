// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the integrity engine behind the voting service.

# Identity

Resolve maps the ID number on the voter roll to a VoterRecord:

	voter, err := svc.Resolve(ctx, "41581309")

ErrUnknownVoter is returned for numbers not on the roll. Format checks
belong to the caller (see auth.NormalizeIDNumber).

# Eligibility

A voter may vote for every President candidate and for every candidate in
their own county. IsEligible is the rule; EligibleCandidates applies it to
the whole candidate list, in ballot order:

	President, Governors, Senators,
	Members of the National Assembly, Members of County Assemblies

Per-county listings may come from a cache.CandidateCache. Listings never
carry vote counts, so a stale entry can only be stale about candidates.

# Casting

CastVote records one ballot and bumps the candidate's count in a single
transaction. A voter holds at most one ballot per category; the UNIQUE
(voter_id, category) index decides races between concurrent calls, and the
loser gets an *AlreadyVotedError.

# Tallies

Tally and TallyByCategory read counts from the store on every call.
GroupByCategory shapes them for display.
*/
package voting
