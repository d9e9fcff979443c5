package dialogue

// pronounReferences are placeholder task references resolved against
// conversation context rather than task titles.
var pronounReferences = map[string]bool{
	"it": true, "that": true, "this": true, "that one": true, "this one": true,
	"the task": true, "that task": true,
}

// IsPronounReference reports whether the (normalized) reference is a
// context placeholder like "it" or "that one".
func IsPronounReference(reference string) bool {
	return pronounReferences[reference]
}

// bulkReferences address every candidate task at once.
var bulkReferences = map[string]bool{
	"all": true, "everything": true, "all of them": true, "all tasks": true,
}

// IsBulkReference reports whether the reference addresses all tasks.
func IsBulkReference(reference string) bool {
	return bulkReferences[reference]
}
