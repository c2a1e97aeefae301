package contract

import "strings"

// Branches rewrites c into disjunctive normal form: a list of conjunctions,
// any one of which satisfies c.
//
// And distributes over Or. Unsatisfiable conjunctions are dropped and
// Satisfied terms vanish from conjunctions, so an empty conjunction means
// "always spendable". A nil result means c can never be satisfied.
func Branches(c Clause) [][]Clause {
	switch c := c.(type) {
	case Satisfied:
		return [][]Clause{{}}
	case Unsatisfiable:
		return nil
	case Or:
		return append(Branches(c.A), Branches(c.B)...)
	case And:
		left, right := Branches(c.A), Branches(c.B)
		out := make([][]Clause, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				conj := make([]Clause, 0, len(l)+len(r))
				conj = append(conj, l...)
				conj = append(conj, r...)
				out = append(out, conj)
			}
		}
		return out
	default:
		return [][]Clause{{c}}
	}
}

// Script renders branches as assembly.
//
// A single branch is its fragments followed by 1. Two or more branches are
// nested IF/ELSE blocks selected by boolean witness items.
func Script(branches [][]Clause) string {
	if len(branches) == 0 {
		return "RETURN"
	}
	var sb strings.Builder
	writeBranches(&sb, branches)
	sb.WriteString("1")
	return sb.String()
}

func writeBranches(sb *strings.Builder, branches [][]Clause) {
	if len(branches) == 1 {
		for _, c := range branches[0] {
			sb.WriteString(fragment(c))
			sb.WriteString(" ")
		}
		return
	}
	sb.WriteString("IF ")
	writeBranches(sb, branches[:1])
	sb.WriteString("ELSE ")
	writeBranches(sb, branches[1:])
	sb.WriteString("ENDIF ")
}

// Witness lists the stack items that satisfy branch i of n, in push order:
// the last item is on top of the stack when the script starts.
func Witness(branch []Clause, i, n int) []string {
	var items []string
	for j := len(branch) - 1; j >= 0; j-- {
		items = append(items, witness(branch[j])...)
	}
	if n > 1 {
		if i < n-1 {
			items = append(items, "1")
		}
		for k := 0; k < i; k++ {
			items = append(items, "0")
		}
	}
	return items
}

// PolicyOf renders a conjunction as a policy string.
func PolicyOf(branch []Clause) string {
	return AndOf(branch...).String()
}
