// Package coder defines the extension protocol through which registered types
// build themselves from a decoded payload.
//
// A registered type opts into one of three capability tiers, resolved once
// when it is registered:
//
//  1. CapabilityCoder: the type implements Initializer and receives a *Coder
//     carrying the scalar, sequence, or field-map payload.
//  2. CapabilityLegacy: the type implements LegacyInitializer and receives the
//     tag and a plain field map. This tier is deprecated.
//  3. CapabilityAttributes: neither hook; fields are assigned one by one
//     through the type's FieldTable, and leftovers go to an AttributeSetter.
package coder
