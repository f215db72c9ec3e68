package container

const (
	DefaultCapacity = 5
)

const (
	KindStack  = "stack"
	KindQueue  = "queue"
	KindLinked = "linked"
	KindArray  = "array"
	KindBst    = "bst"
)

var Kinds = []string{KindStack, KindQueue, KindLinked, KindArray, KindBst}
