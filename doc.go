/*
Package hydrate converts loosely-typed nested records, as produced by network
responses or stored fixtures, into fully constructed instances of declared
model types. Downstream code gets instance identity and type-correct field
values (dates in particular) instead of duck-typed plain maps.

The library follows the same declare-once, read-many workflow as the rest of
the Suparena storage stack:
  - Declaration time: model types register per-field reconstruction rules
    in a registry.Registry, usually from init() or generated code
  - Runtime: the engine walks a raw record together with that metadata and
    builds the output instance tree

Declaring models:

	type Order struct {
	    Products    []OrderProduct  `json:"products"`
	    OrderedBy   *User           `json:"orderedBy"`
	    CreatedDate strfmt.DateTime `json:"createdDate"`
	}

	func init() {
	    registry.DeclareDataType[Order](registry.Default, "products", registry.TypeFor[OrderProduct](), true)
	    registry.DeclareDataType[Order](registry.Default, "orderedBy", registry.TypeFor[User](), false)
	    registry.DeclareDataType[Order](registry.Default, "createdDate", registry.DateType, false)
	}

Deserializing:

	order, err := hydrate.As[Order](registry.Default, rawRecord)

Or as a pipeline mapping step, for example feeding a record source:

	mapFn := hydrate.MakeDeserializer(registry.Default, registry.TypeFor[Order](), false)

Execution is synchronous and single-threaded per call: a depth-first walk
with no suspension points and no I/O. Independent calls may run concurrently
without coordination because the registry is read-only after declaration.

Failures are deterministic and fatal to the call; see the errors package for
the taxonomy. The engine validates reconstruction metadata, not business
rules, and never returns a partially built instance.
*/
package hydrate
