package model

import "slices"

// Clone returns a deep copy of the vocabulary.
func (v Vocab) Clone() Vocab {
	out := Vocab{
		Prefixes:           slices.Clone(v.Prefixes),
		OntologyProperties: slices.Clone(v.OntologyProperties),
	}
	if v.Classes != nil {
		out.Classes = make([]RDFClass, len(v.Classes))
		for i, c := range v.Classes {
			c.Term = c.Term.clone()
			c.Type = slices.Clone(c.Type)
			c.UserType = slices.Clone(c.UserType)
			c.SubClassOf = slices.Clone(c.SubClassOf)
			c.RangeOf = slices.Clone(c.RangeOf)
			c.DomainOf = slices.Clone(c.DomainOf)
			c.IncludedInDomainOf = slices.Clone(c.IncludedInDomainOf)
			c.IncludesRangeOf = slices.Clone(c.IncludesRangeOf)
			out.Classes[i] = c
		}
	}
	if v.Properties != nil {
		out.Properties = make([]RDFProperty, len(v.Properties))
		for i, p := range v.Properties {
			p.Term = p.Term.clone()
			p.Type = slices.Clone(p.Type)
			p.UserType = slices.Clone(p.UserType)
			p.SubPropertyOf = slices.Clone(p.SubPropertyOf)
			p.Domain = slices.Clone(p.Domain)
			p.Range = slices.Clone(p.Range)
			out.Properties[i] = p
		}
	}
	if v.Individuals != nil {
		out.Individuals = make([]RDFIndividual, len(v.Individuals))
		for i, ind := range v.Individuals {
			ind.Term = ind.Term.clone()
			ind.Type = slices.Clone(ind.Type)
			out.Individuals[i] = ind
		}
	}
	if v.Datatypes != nil {
		out.Datatypes = make([]RDFDatatype, len(v.Datatypes))
		for i, d := range v.Datatypes {
			d.Term = d.Term.clone()
			d.Type = slices.Clone(d.Type)
			d.SubClassOf = slices.Clone(d.SubClassOf)
			d.RangeOf = slices.Clone(d.RangeOf)
			d.IncludesRangeOf = slices.Clone(d.IncludesRangeOf)
			out.Datatypes[i] = d
		}
	}
	return out
}

func (t Term) clone() Term {
	t.DefinedBy = slices.Clone(t.DefinedBy)
	t.SeeAlso = slices.Clone(t.SeeAlso)
	t.Example = slices.Clone(t.Example)
	t.Context = slices.Clone(t.Context)
	return t
}

// Clone returns a deep copy of the bookkeeping.
func (g Global) Clone() Global {
	out := g
	if g.StatusCounts != nil {
		out.StatusCounts = make(map[Status]int, len(g.StatusCounts))
		for k, v := range g.StatusCounts {
			out.StatusCounts[k] = v
		}
	}
	if g.ContextMentions != nil {
		out.ContextMentions = make(map[string][]string, len(g.ContextMentions))
		for k, v := range g.ContextMentions {
			out.ContextMentions[k] = slices.Clone(v)
		}
	}
	return out
}
