// Package types defines the value objects, entity records, predicates and
// standard errors for the estatebook record manager.
//
// Value objects (Name, Phone, Email, Price, Address, Description,
// PropertyName, Characteristics) validate their raw input at construction
// and are immutable afterwards. Entities (Person, Owner, Property) are
// immutable aggregates of value objects; they expose a weak identity
// comparison (IsSamePerson, IsSameProperty) used for duplicate rejection and
// a full comparison (Equal) used for change detection.
package types
