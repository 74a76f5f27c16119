package mech

import (
	"github.com/atmoschem/mex/expr"
	"github.com/atmoschem/mex/rates"
	"github.com/atmoschem/mex/reaction"
	"github.com/atmoschem/mex/util"
)

// AttachIRR attaches integrated reaction rates: every reaction gets
// its series from the store, and every declared net reaction is
// materialized over the rated reactions.
//
// After attachment, the expression environment resolves reaction and
// net-reaction names to rate-carrying reactions.
func (m *Mechanism) AttachIRR(store rates.Store) error {
	rated := make(map[string]*reaction.Reaction, len(m.Reactions))
	for name, rxn := range m.Reactions {
		series, err := store.Series(name)
		if err != nil {
			return err
		}
		rated[name] = rxn.Mul(series)
	}

	env := make(expr.MapEnv, len(rated))
	for name, rxn := range rated {
		env[name] = rxn
	}
	for name, src := range m.NetReactionDefs {
		v, err := expr.Eval(src, env)
		if err != nil {
			return &DefinitionError{What: "net reaction " + name, Err: err}
		}
		rxn, is := v.(*reaction.Reaction)
		if !is {
			return &DefinitionError{What: "net reaction " + name, Err: errNotReaction}
		}
		rated[name] = rxn
	}

	m.Rated = rated
	m.invalidate()
	return nil
}

// AttachIPR attaches integrated process rates: every named series in
// the store becomes a process, and declared process groups are
// evaluated over them.  A group that fails to evaluate is skipped
// with a log line; partial process data is common when exploring.
func (m *Mechanism) AttachIPR(store rates.Store) error {
	names, err := store.Names()
	if err != nil {
		return err
	}
	m.Processes = make(map[string]*rates.Process, len(names))
	env := make(expr.MapEnv, len(names))
	for _, name := range names {
		data, err := store.Series(name)
		if err != nil {
			return err
		}
		p := rates.NewProcess(name, data)
		m.Processes[name] = p
		env[name] = p
	}

	for name, src := range m.Def.ProcessGroupList {
		v, err := expr.Eval(src, env)
		if err != nil {
			util.Logf("mech: can't create process group %s: %s", name, err)
			continue
		}
		p, is := v.(*rates.Process)
		if !is {
			util.Logf("mech: process group %s is not a process", name)
			continue
		}
		p.Name = name
		m.Processes[name] = p
		env[name] = p
	}

	m.invalidate()
	return nil
}
