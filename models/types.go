package models

import (
	"slices"
	"time"
)

// Ballot categories, in ballot order. Only CategoryPresident is nationwide.
const (
	CategoryPresident    = "President"
	CategoryGovernor     = "Governors"
	CategorySenator      = "Senators"
	CategoryNationalMP   = "Members of the National Assembly"
	CategoryCountyMember = "Members of County Assemblies"
)

// Categories lists every ballot category in the order they appear on a ballot.
var Categories = []string{
	CategoryPresident,
	CategoryGovernor,
	CategorySenator,
	CategoryNationalMP,
	CategoryCountyMember,
}

// IsNationwide reports whether a category is voted on without a county filter.
func IsNationwide(category string) bool {
	return category == CategoryPresident
}

// IsCategory reports whether category is part of the fixed enumeration.
func IsCategory(category string) bool {
	return slices.Contains(Categories, category)
}

// CategoryRank returns the ballot position of a category; unknown categories sort last.
func CategoryRank(category string) int {
	if i := slices.Index(Categories, category); i >= 0 {
		return i
	}
	return len(Categories)
}

// Request types

type LoginRequest struct {
	IDNumber string `json:"id_number"`
}

type CastVoteRequest struct {
	VoterID     int64 `json:"voterId"`
	CandidateID int64 `json:"candidateId"`
}

// Response types

type LoginResponse struct {
	UserID   int64  `json:"userId"`
	County   string `json:"county"`
	FullName string `json:"fullName"`
}

type CastVoteResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	BallotID int64  `json:"ballotId"`
	Category string `json:"category"`
}

type CategoryResults struct {
	Category   string           `json:"category"`
	Nationwide bool             `json:"nationwide"`
	TotalVotes int64            `json:"totalVotes"`
	Candidates []CandidateTally `json:"candidates"`
}

type ResultsResponse struct {
	Categories []CategoryResults `json:"categories"`
}

// Domain types

// VoterRecord is what identity resolution hands back to the caller.
type VoterRecord struct {
	ID       int64  `json:"id"`
	IDNumber string `json:"-"` // Never expose in JSON
	FullName string `json:"full_name"`
	County   string `json:"county"`
}

// Candidate as shown to a voter. Vote counts are deliberately absent; see CandidateTally.
type Candidate struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	County   *string `json:"county"`
}

type CandidateTally struct {
	Candidate
	Votes int64 `json:"votes"`
}

type Ballot struct {
	ID          int64     `json:"id"`
	VoterID     int64     `json:"voter_id"`
	CandidateID int64     `json:"candidate_id"`
	Category    string    `json:"category"`
	CastAt      time.Time `json:"cast_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
