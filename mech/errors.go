package mech

// These errors are user errors, not internal errors.

import "errors"

var (
	errNoReactions = errors.New("no reaction_list")
	errNoEquals    = errors.New(`expected "NAME = expression"`)
	errNotSpecies  = errors.New("expression is not a species")
	errNotReaction = errors.New("expression is not a reaction")
)

// DefinitionError occurs when a declarative definition is malformed:
// bad YAML, a species group that doesn't parse, a net-reaction
// expression that doesn't evaluate.
type DefinitionError struct {
	What string
	Err  error
}

func (e *DefinitionError) Error() string {
	return "bad " + e.What + ": " + e.Err.Error()
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// UnknownName occurs when a query or expression refers to a name the
// mechanism doesn't know.
type UnknownName struct {
	Name string
}

func (e *UnknownName) Error() string {
	return `"` + e.Name + `" is not in the mechanism`
}

// EmptyResult occurs when net-reaction synthesis is requested and the
// query matched no reactions.
type EmptyResult struct {
	Query string
}

func (e *EmptyResult) Error() string {
	return "query matched no reactions: " + e.Query
}

// NotAttached occurs when rate-dependent machinery is used before
// IRR/IPR data has been attached.
type NotAttached struct {
	What string
}

func (e *NotAttached) Error() string {
	return e.What + " requires attached rate data"
}
