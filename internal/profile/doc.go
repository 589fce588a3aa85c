// Package profile provides the YAML mapping profile: schema, parsing,
// validation, and application to a rules.Builder.
//
// A profile declares mapping rules outside Go code. It is loaded once at
// startup and turned into an immutable rules.Registry plus engine options.
//
// # Schema Overview
//
//	version: "1"
//	options:
//	  max_depth: 32
//	  concurrency: 4
//	  strict: false
//	  gaps: [missing_source, type_mismatch]
//	  conversions: [safe_number]
//	types:
//	  - warehouse.Customer
//	  - store.Customer
//	# Direct rules shorthand, destination: source
//	121:
//	  warehouse.Customer::Email: store.Customer::Email
//	rules:
//	  - for: warehouse.Order::ItemCount
//	    from: store.Order::Items
//	    converter: count
//	  - for: warehouse.Order::Tags
//	    from: store.Order::Labels
//	    converter: { join: ", " }
//	  - for: warehouse.Order::ExternalID
//	    from: store.Order::ExternalID
//	    converter: { chain: [uuid, uuid_string] }
//	  - for: warehouse.Customer::DisplayName
//	    resolver: { cel: "src.FullName + ' <' + src.Email + '>'" }
//
// # Rule forms
//
//   - from only: direct rule, the source value is mapped through the
//     destination's declared type
//   - from + converter: the converter output is assigned as is
//   - resolver only: the resolver sees the whole source object
//   - from + resolver: the resolver is used when the source is not of the
//     from owner type
//
// "121" entries are expanded into direct rules ahead of "rules"; an entry
// in "rules" for the same destination replaces the shorthand one.
//
// # Capabilities
//
// Converters and resolvers are referenced by name. The stock converters
// count, join, uuid, uuid_string and chain and the cel resolver are always
// available; applications add their own through Capabilities.
package profile
