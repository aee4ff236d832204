// Package hott provides a small runtime model of Martin-Löf identity
// types over the comparable Go types. It backs sanity checks on the
// category map: equational reasoning about positions and labels is
// phrased as identity proofs instead of ad hoc boolean soup.
package hott

// Id is the identity type Id_A(a, b): a witness that two values of A
// are propositionally equal. The witness records both sides so proofs
// can be inspected after the fact.
type Id[A comparable] struct {
	LHS, RHS A
	holds    bool
}

// NewId forms the identity proposition for two values. The proposition
// holds exactly when the values compare equal.
func NewId[A comparable](a, b A) Id[A] {
	return Id[A]{LHS: a, RHS: b, holds: a == b}
}

// Refl is the reflexivity constructor: every value is equal to itself.
func Refl[A comparable](a A) Id[A] {
	return NewId(a, a)
}

// Proven reports whether the identity actually holds.
func (p Id[A]) Proven() bool {
	return p.holds
}

// Sym flips an identity proof: Id(a, b) yields Id(b, a).
func (p Id[A]) Sym() Id[A] {
	return NewId(p.RHS, p.LHS)
}

// Trans composes two identity proofs: Id(a, b) and Id(b, c) yield
// Id(a, c). Composition through a mismatched middle value does not
// prove anything.
func (p Id[A]) Trans(q Id[A]) Id[A] {
	r := NewId(p.LHS, q.RHS)
	r.holds = p.holds && q.holds && p.RHS == q.LHS
	return r
}

// Elim is the path induction eliminator: given a value of the motive at
// the reflexive case, produce a value at the general case. A failed
// proof collapses to the zero value.
func Elim[A comparable, P any](p Id[A], base P) P {
	if p.holds {
		return base
	}
	var zero P
	return zero
}

// Transport carries a value of the motive along an identity proof.
// It is Elim under its traditional name.
func Transport[A comparable, P any](p Id[A], pa P) P {
	return Elim(p, pa)
}

// Sigma is the dependent pair: a value together with evidence about it.
type Sigma[A comparable, B any] struct {
	Fst A
	Snd B
}

// Pair forms a dependent pair.
func Pair[A comparable, B any](a A, b B) Sigma[A, B] {
	return Sigma[A, B]{Fst: a, Snd: b}
}

// PointwiseEqual checks function extensionality at a single point:
// f and g agree at x. Full extensionality is approximated by checking
// a finite set of points with Forall.
func PointwiseEqual[A any, B comparable](f, g func(A) B, x A) bool {
	return f(x) == g(x)
}

// Equiv is an equivalence between two types: a map with an inverse.
type Equiv[A, B comparable] struct {
	To   func(A) B
	From func(B) A
}

// Section reports whether the round trip through B returns to a.
func (e Equiv[A, B]) Section(a A) bool {
	return e.From(e.To(a)) == a
}

// Retraction reports whether the round trip through A returns to b.
func (e Equiv[A, B]) Retraction(b B) bool {
	return e.To(e.From(b)) == b
}

// Forall checks a predicate over the finite range [0, n).
func Forall(n int, pred func(int) bool) bool {
	for i := 0; i < n; i++ {
		if !pred(i) {
			return false
		}
	}
	return true
}

// Propositional connectives over decided propositions.

func And(p, q bool) bool     { return p && q }
func Or(p, q bool) bool      { return p || q }
func Implies(p, q bool) bool { return !p || q }
func Not(p bool) bool        { return !p }
