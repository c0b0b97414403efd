package assemble

import (
	"github.com/reoring/yml2vocab/model"
)

// Placeholders substituted for missing scalars in prefix and ontology entries.
const (
	UndefinedPrefixValue      = "UNDEFINED PREFIX VALUE"
	UndefinedOntologyProperty = "UNDEFINED ONTOLOGY PROPERTY"
	UndefinedPropertyValue    = "UNDEFINED PROPERTY VALUE"
)

// DateProperty is the ontology property stamped with the generation date.
const DateProperty = "dc:date"

// RDF and OWL types assigned by the assembler.
const (
	TypeProperty           = "rdf:Property"
	TypeDeprecatedProperty = "owl:DeprecatedProperty"
	TypeObjectProperty     = "owl:ObjectProperty"
	TypeDatatypeProperty   = "owl:DatatypeProperty"
	TypeClass              = "rdfs:Class"
	TypeDeprecatedClass    = "owl:DeprecatedClass"
)

// DefaultPrefixes are added to every vocabulary, after the authored ones.
func DefaultPrefixes() []model.RDFPrefix {
	return []model.RDFPrefix{
		{Prefix: "dc", URL: "http://purl.org/dc/terms/"},
		{Prefix: "owl", URL: "http://www.w3.org/2002/07/owl#"},
		{Prefix: "rdf", URL: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
		{Prefix: "rdfs", URL: "http://www.w3.org/2000/01/rdf-schema#"},
		{Prefix: "xsd", URL: "http://www.w3.org/2001/XMLSchema#"},
		{Prefix: "vs", URL: "http://www.w3.org/2003/06/sw-vocab-status/ns#"},
		{Prefix: "schema", URL: "http://schema.org/"},
		{Prefix: "jsonld", URL: "http://www.w3.org/ns/json-ld#"},
	}
}

// extraDatatypes are datatypes outside the xsd namespace that still make a property
// an owl:DatatypeProperty.
var extraDatatypes = map[string]struct{}{
	"rdf:JSON":          {},
	"rdf:HTML":          {},
	"rdf:XMLLiteral":    {},
	"rdf:PlainLiteral":  {},
	"rdf:langString":    {},
	"rdf:dirLangString": {},
	"rdfs:Literal":      {},
	"owl:real":          {},
	"owl:rational":      {},
}
