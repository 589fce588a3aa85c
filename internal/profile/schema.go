package profile

// SupportedVersion is the only profile version understood.
const SupportedVersion = "1"

// Profile is the root of a mapping profile file.
type Profile struct {
	// Version of the profile schema.
	Version string `yaml:"version"`
	// Options tune the mapper built from this profile.
	Options *OptionsSpec `yaml:"options,omitempty"`
	// Types lists the catalog type names the rules refer to.
	Types StringOrArray `yaml:"types,omitempty"`
	// OneToOne is the direct rule shorthand, destination: source.
	OneToOne map[string]string `yaml:"121,omitempty"`
	// Rules are the explicit mapping rules.
	Rules []RuleSpec `yaml:"rules,omitempty"`
}

// OptionsSpec mirrors options.Config. Zero values keep the defaults.
type OptionsSpec struct {
	MaxDepth    int           `yaml:"max_depth,omitempty"`
	Concurrency int           `yaml:"concurrency,omitempty"`
	Strict      bool          `yaml:"strict,omitempty"`
	Gaps        StringOrArray `yaml:"gaps,omitempty"`
	Conversions StringOrArray `yaml:"conversions,omitempty"`
}

// RuleSpec is one destination property rule.
type RuleSpec struct {
	// For is the destination property, "Owner::Name".
	For string `yaml:"for"`
	// From is the source property, "Owner::Name".
	From string `yaml:"from,omitempty"`
	// Converter transforms the From value.
	Converter *ConverterSpec `yaml:"converter,omitempty"`
	// Resolver computes the value from the whole source.
	Resolver *ResolverSpec `yaml:"resolver,omitempty"`
}

// ConverterSpec names a converter, with an argument for the parameterized
// ones. In YAML it is either a bare name or a single-key mapping:
//
//	converter: count
//	converter: { join: ", " }
//	converter: { chain: [uuid, uuid_string] }
type ConverterSpec struct {
	Name  string
	Arg   string
	Chain []ConverterSpec
}

// ResolverSpec names a registered resolver or carries a CEL expression:
//
//	resolver: totalPrice
//	resolver: { cel: "size(src.Items)" }
type ResolverSpec struct {
	Name string
	CEL  string
}

// StringOrArray is a YAML field accepting a single string or a list.
type StringOrArray []string

// Converter names understood without registration.
const (
	ConverterCount      = "count"
	ConverterJoin       = "join"
	ConverterUUID       = "uuid"
	ConverterUUIDString = "uuid_string"
	ConverterChain      = "chain"

	ResolverCEL = "cel"
)

// Conversion category names accepted in options.conversions.
const (
	ConversionSafeNumber   = "safe_number"
	ConversionUnsafeNumber = "unsafe_number"
	ConversionAll          = "all"
	ConversionNone         = "none"
)
