// Package rules holds the explicit per-property mapping rules.
//
// A Rule binds a destination property to exactly one data source: a source
// property (optionally passed through a TypeConverter) or a ValueResolver
// computed from the whole source object. Rules are collected by a Builder
// and frozen into a Registry that the mapping engine reads.
//
//	b := rules.NewBuilder()
//	_ = b.Direct("view.Customer::FullName", "store.Customer::Name")
//	_ = b.WithConverter("view.Order::ItemCount", "store.Order::Items", converters.Count())
//	_ = b.WithResolver("view.Order::Total", rules.ResolverFunc(sumItems))
//	reg, err := b.Build()
//
// Registering the same destination twice replaces the earlier rule.
package rules
