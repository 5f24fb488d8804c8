package types

// IsEqualType reports whether a and b denote the exact same type (spec.md
// §4.5 "values of correct type" and §4.4's interface-implementation
// covariance both need this as the base case of a subtype check).
func IsEqualType(a, b Type) bool {
	if a == b {
		return true
	}
	switch av := a.(type) {
	case *NonNull:
		bv, ok := b.(*NonNull)
		return ok && IsEqualType(av.Type, bv.Type)
	case *List:
		bv, ok := b.(*List)
		return ok && IsEqualType(av.Type, bv.Type)
	default:
		an, aok := a.(NamedType)
		bn, bok := b.(NamedType)
		return aok && bok && an.TypeName() == bn.TypeName()
	}
}

// IsTypeSubTypeOf reports whether maybeSubType is usable everywhere
// superType is expected: the same type, a NonNull wrapping a subtype, or
// (for the named-type base case) a concrete Object type that is one of
// schema's possible runtime types for an abstract superType. This backs
// spec.md §4.4's "object implements each declared interface" covariance
// check and spec.md §4.5's "variable usages allowed" rule (a variable's
// declared type must be usable where a location expects a narrower type).
func IsTypeSubTypeOf(schema *Schema, maybeSubType, superType Type) bool {
	if IsEqualType(maybeSubType, superType) {
		return true
	}

	if sup, ok := superType.(*NonNull); ok {
		if sub, ok := maybeSubType.(*NonNull); ok {
			return IsTypeSubTypeOf(schema, sub.Type, sup.Type)
		}
		return false
	}
	if sub, ok := maybeSubType.(*NonNull); ok {
		return IsTypeSubTypeOf(schema, sub.Type, superType)
	}

	if sup, ok := superType.(*List); ok {
		if sub, ok := maybeSubType.(*List); ok {
			return IsTypeSubTypeOf(schema, sub.Type, sup.Type)
		}
		return false
	}
	if _, ok := maybeSubType.(*List); ok {
		return false
	}

	subNamed, subOK := maybeSubType.(NamedType)
	supNamed, supOK := superType.(NamedType)
	if !subOK || !supOK {
		return false
	}
	if obj, ok := subNamed.(*Object); ok && IsAbstractType(supNamed) {
		return schema.IsPossibleType(supNamed, obj)
	}
	return false
}
