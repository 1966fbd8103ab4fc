/*
Package registry manages field metadata for the hydrate deserialization engine.

The registry is a write-once-per-field table mapping a (model type, field name)
pair to its reconstruction rule: target type, array flag, skip flag, and
converter table. It is populated when model types are declared and is read-only
for the rest of the process lifetime.

Declaring a model:

	func init() {
	    registry.DeclareDataType[Order](registry.Default, "products", registry.TypeFor[OrderProduct](), true)
	    registry.DeclareDataType[Order](registry.Default, "orderedBy", registry.TypeFor[User](), false)
	    registry.DeclareDataType[Order](registry.Default, "createdDate", registry.DateType, false)
	}

Each declaration sets one attribute for the pair; declarations for the same
field merge, and redeclaring an attribute overwrites it (last write wins).
The only declaration-time failure is attaching both skip and converters to
one field, which returns errors.ErrSkipConverterConflict from whichever call
completes the pair.

Model types may share field names freely because metadata keys on the
(type, field) pair. Pointer and value forms of a model type key identically.

All declarations must complete before the first deserialization call. Under
that write-then-read-only discipline the engine never races with a writer;
the internal lock only serializes the declarations themselves.
*/
package registry
