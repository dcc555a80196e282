package pma

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/pmgraph/cbtree"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by Array operations.
var (
	// ErrEmpty indicates an operation that requires at least one element
	// was attempted on an empty Array.
	ErrEmpty = errors.New("pma: array is empty")
)

// Observer is notified before every relocation of a live element,
// giving a container built on top of Array a chance to keep external
// pointers to that element valid. Reset is called once after a batch of
// relocations completes (a rearrangement, a grow, or a shrink), and
// after each single-slot shift an insertion or erasure makes inside a
// bucket, as a hint that any per-call memoization an Observer keeps
// (e.g. "last node touched") should be cleared.
type Observer[T any] interface {
	Move(srcPoolIndex, dstPoolIndex int, v T)
	Reset()
}

// Option configures an Array at construction time.
type Option[T any] func(*Array[T])

// WithBucketSize sets the number of elements per leaf bucket of the
// density tree. It must be a power of two; the default is 8.
func WithBucketSize[T any](n uint32) Option[T] {
	return func(a *Array[T]) {
		if n == 0 || n&(n-1) != 0 {
			panic("pma: bucket size must be a power of two")
		}
		a.bucketSize = n
	}
}

// WithDensityBounds overrides the leaf-level density bounds (the root's
// bounds are always 0.1/0.9). Defaults are 0.5 (min) and 0.75 (max).
func WithDensityBounds[T any](minLeaf, maxLeaf float64) Option[T] {
	return func(a *Array[T]) {
		if !(0 < minLeaf && minLeaf < maxLeaf && maxLeaf < 1) {
			panic("pma: density bounds must satisfy 0 < min < max < 1")
		}
		a.minLeafDensity = minLeaf
		a.maxLeafDensity = maxLeaf
	}
}

// WithLogger attaches a zerolog.Logger that receives Debug-level events
// for pool resizes and rearrangement extents. A nil logger (the
// default) disables this instrumentation entirely.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(a *Array[T]) { a.logger = &logger }
}

// Array is a Packed Memory Array over elements of type T, kept sorted
// according to less.
type Array[T any] struct {
	less     func(a, b T) bool
	emptyV   T
	observer []Observer[T]

	bucketSize     uint32
	minLeafDensity float64
	maxLeafDensity float64

	pool    []T
	density *densityTree
	n       int

	logger *zerolog.Logger
	rnd    *rand.Rand
}

// New creates an empty Array ordered by less, with emptyValue used to
// fill gap slots.
func New[T any](less func(a, b T) bool, emptyValue T, opts ...Option[T]) *Array[T] {
	a := &Array[T]{
		less:           less,
		emptyV:         emptyValue,
		bucketSize:     8,
		minLeafDensity: 0.5,
		maxLeafDensity: 0.75,
		rnd:            rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.resetPool(0)
	return a
}

func (a *Array[T]) resetPool(height uint) {
	capacity := a.bucketSize << height
	pool := make([]T, capacity)
	for i := range pool {
		pool[i] = a.emptyV
	}
	a.pool = pool
	a.density = newDensityTree(height, a.bucketSize, uint32(a.n), a.minLeafDensity, a.maxLeafDensity)
}

// Len reports the number of elements currently stored.
func (a *Array[T]) Len() int { return a.n }

// Cap reports the current pool capacity.
func (a *Array[T]) Cap() int { return len(a.pool) }

// RegisterObserver adds obs to the set of observers notified on every
// element relocation.
func (a *Array[T]) RegisterObserver(obs Observer[T]) {
	a.observer = append(a.observer, obs)
}

// At returns the element stored at the given pool index.
func (a *Array[T]) At(poolIndex int) T { return a.pool[poolIndex] }

// IsOccupied reports whether poolIndex currently holds a live element.
// Because every leaf bucket keeps its live elements packed at the front,
// this is a cardinality comparison, not a value comparison against the
// empty sentinel.
func (a *Array[T]) IsOccupied(poolIndex int) bool {
	bucket := a.density.getNodeOverIndex(uint32(poolIndex))
	first := int(a.density.getIndexUnderNode(bucket))
	return poolIndex < first+int(bucket.Value().cardinality)
}

// ForEach visits every live element in ascending order, passing its
// pool index.
func (a *Array[T]) ForEach(fn func(poolIndex int, v T) bool) {
	if a.n == 0 {
		return
	}
	bucket := a.density.getNodeOverIndex(0)
	for {
		first := a.density.getIndexUnderNode(bucket)
		card := bucket.Value().cardinality
		for i := uint32(0); i < card; i++ {
			if !fn(int(first+i), a.pool[first+i]) {
				return
			}
		}
		nb, ok := a.nextLeaf(bucket)
		if !ok {
			return
		}
		bucket = nb
	}
}

// ChooseCell returns a uniformly-ish random live element, or ok=false if
// the array is empty.
func (a *Array[T]) ChooseCell() (v T, poolIndex int, ok bool) {
	if a.n == 0 {
		return a.emptyV, -1, false
	}
	virtual := uint32(a.rnd.Intn(a.n))
	idx := int(a.density.findIndexContainingElement(virtual))
	return a.pool[idx], idx, true
}

// findBucket descends the density tree towards the leaf bucket that
// would contain v, comparing v against the first element of each
// candidate right subtree.
func (a *Array[T]) findBucket(v T) cbtree.Node[pmaTreeData] {
	u := a.density.root()
	for !u.IsLeaf() {
		if u.Value().cardinality == 0 {
			for !u.IsLeaf() {
				u.Right()
			}
			break
		}
		right := u
		right.Right()
		if right.Value().cardinality == 0 {
			u.Left()
			continue
		}
		idx := a.density.getIndexUnderNode(right)
		if a.less(v, a.pool[idx]) {
			u.Left()
		} else {
			u = right
		}
	}
	return u
}

func (a *Array[T]) nextLeaf(u cbtree.Node[pmaTreeData]) (cbtree.Node[pmaTreeData], bool) {
	next := u.HorizontalIndex() + 1
	leavesAtLevel := uint32(1) << u.Depth()
	if next >= leavesAtLevel {
		var zero cbtree.Node[pmaTreeData]
		return zero, false
	}
	nb := a.density.root()
	nb.SetAtPos(0, next)
	return nb, true
}

func (a *Array[T]) prevLeaf(u cbtree.Node[pmaTreeData]) (cbtree.Node[pmaTreeData], bool) {
	idx := u.HorizontalIndex()
	if idx == 0 {
		var zero cbtree.Node[pmaTreeData]
		return zero, false
	}
	nb := a.density.root()
	nb.SetAtPos(0, idx-1)
	return nb, true
}

// NextOccupied returns the pool index of the next live element strictly
// after poolIndex, scanning forward across bucket boundaries, or
// ok=false if poolIndex holds the last live element.
func (a *Array[T]) NextOccupied(poolIndex int) (int, bool) {
	bucket := a.density.getNodeOverIndex(uint32(poolIndex))
	first := int(a.density.getIndexUnderNode(bucket))
	card := int(bucket.Value().cardinality)
	if poolIndex+1 < first+card {
		return poolIndex + 1, true
	}
	nb, ok := a.nextLeaf(bucket)
	for ok {
		nfirst := int(a.density.getIndexUnderNode(nb))
		ncard := int(nb.Value().cardinality)
		if ncard > 0 {
			return nfirst, true
		}
		nb, ok = a.nextLeaf(nb)
	}
	return -1, false
}

// PrevOccupied returns the pool index of the previous live element
// strictly before poolIndex, scanning backward across bucket
// boundaries, or ok=false if poolIndex holds the first live element.
func (a *Array[T]) PrevOccupied(poolIndex int) (int, bool) {
	bucket := a.density.getNodeOverIndex(uint32(poolIndex))
	first := int(a.density.getIndexUnderNode(bucket))
	if poolIndex-1 >= first {
		return poolIndex - 1, true
	}
	for {
		pb, ok := a.prevLeaf(bucket)
		if !ok {
			return -1, false
		}
		pfirst := int(a.density.getIndexUnderNode(pb))
		pcard := int(pb.Value().cardinality)
		if pcard > 0 {
			return pfirst + pcard - 1, true
		}
		bucket = pb
	}
}

// Set overwrites the live element at poolIndex in place, without
// triggering any relocation or observer notification. Used by a
// container that needs to patch a cross-reference in an already-live
// neighbor after that neighbor's own Observer.Move callback fired.
func (a *Array[T]) Set(poolIndex int, v T) { a.pool[poolIndex] = v }

// LowerBound returns the pool index of the first live element not less
// than v, scanning forward across bucket boundaries as needed. It
// returns -1 if every element is less than v.
func (a *Array[T]) LowerBound(v T) int {
	if a.n == 0 {
		return -1
	}
	bucket := a.findBucket(v)
	for {
		first := a.density.getIndexUnderNode(bucket)
		card := bucket.Value().cardinality
		for i := uint32(0); i < card; i++ {
			if !a.less(a.pool[first+i], v) {
				return int(first + i)
			}
		}
		nb, ok := a.nextLeaf(bucket)
		if !ok {
			return -1
		}
		bucket = nb
	}
}

// Find returns the pool index of an element equal to v (neither less
// nor greater per less), or ok=false if no such element exists.
func (a *Array[T]) Find(v T) (poolIndex int, ok bool) {
	idx := a.LowerBound(v)
	if idx < 0 {
		return -1, false
	}
	got := a.pool[idx]
	if a.less(v, got) || a.less(got, v) {
		return -1, false
	}
	return idx, true
}

// Insert adds v in sorted position and returns its pool index.
func (a *Array[T]) Insert(v T) int {
	if !a.density.affordsInsertion() {
		a.resize(a.density.tree.Height() + 1)
	}
	bucket := a.findBucket(v)
	if !a.density.affordsElementInsertionAt(bucket) {
		sparse := bucket
		parent := a.density.getParentForInsertion(bucket)
		a.rearrangeInPlace(parent, &sparse)
		bucket = a.findBucket(v)
	}
	return a.insertIntoBucket(bucket, v)
}

func (a *Array[T]) insertIntoBucket(bucket cbtree.Node[pmaTreeData], v T) int {
	first := a.density.getIndexUnderNode(bucket)
	card := bucket.Value().cardinality
	pos := first + card
	for i := first; i < first+card; i++ {
		if !a.less(a.pool[i], v) {
			pos = i
			break
		}
	}
	for i := first + card; i > pos; i-- {
		a.relocate(i-1, i)
	}
	a.pool[pos] = v
	a.density.increaseCardinality(bucket)
	a.n++
	return int(pos)
}

// InsertOptimal inserts v at whichever live slot currently needs the
// least rearrangement to absorb it, ignoring value order entirely, and
// returns its pool index. It is for callers that use Array as a plain
// gap-tolerant container rather than a sorted one (pmg's node pool,
// for instance, where relative order carries no meaning for a node
// with no edges yet).
func (a *Array[T]) InsertOptimal(v T) int {
	if !a.density.affordsInsertion() {
		a.resize(a.density.tree.Height() + 1)
	}
	bucket := a.density.findEmptiestNode()
	if !a.density.affordsElementInsertionAt(bucket) {
		sparse := bucket
		parent := a.density.getParentForInsertion(bucket)
		a.rearrangeInPlace(parent, &sparse)
		bucket = a.density.findEmptiestNode()
	}
	return a.appendIntoBucket(bucket, v)
}

// InsertBeforeFunc inserts v immediately before the live element whose
// current pool index is reported by resolve, and returns v's new pool
// index. resolve is called again after any resize or rearrangement
// InsertBeforeFunc triggers, so a caller holding a pointer kept current
// by Observer.Move (as every NodeDescriptor in pmg is) can simply
// dereference it rather than caching a pool index that a relocation
// might invalidate mid-call.
func (a *Array[T]) InsertBeforeFunc(resolve func() int, v T) int {
	if !a.density.affordsInsertion() {
		a.resize(a.density.tree.Height() + 1)
	}
	poolIndex := uint32(resolve())
	bucket := a.density.getNodeOverIndex(poolIndex)
	if !a.density.affordsElementInsertionAt(bucket) {
		sparse := bucket
		parent := a.density.getParentForInsertion(bucket)
		a.rearrangeInPlace(parent, &sparse)
		poolIndex = uint32(resolve())
		bucket = a.density.getNodeOverIndex(poolIndex)
	}
	first := a.density.getIndexUnderNode(bucket)
	card := bucket.Value().cardinality
	for i := first + card; i > poolIndex; i-- {
		a.relocate(i-1, i)
	}
	a.pool[poolIndex] = v
	a.density.increaseCardinality(bucket)
	a.n++
	return int(poolIndex)
}

func (a *Array[T]) appendIntoBucket(bucket cbtree.Node[pmaTreeData], v T) int {
	first := a.density.getIndexUnderNode(bucket)
	card := bucket.Value().cardinality
	pos := first + card
	a.pool[pos] = v
	a.density.increaseCardinality(bucket)
	a.n++
	return int(pos)
}

// PushBack appends v after the current maximum element. The caller is
// responsible for v sorting after everything already stored; PushBack
// does not search for an insertion point.
func (a *Array[T]) PushBack(v T) int {
	if !a.density.affordsInsertion() {
		a.resize(a.density.tree.Height() + 1)
	}
	bucket := a.density.getNodeOverIndex(uint32(len(a.pool)) - 1)
	if !a.density.affordsElementInsertionAt(bucket) {
		sparse := bucket
		parent := a.density.getParentForInsertion(bucket)
		a.rearrangeInPlace(parent, &sparse)
		bucket = a.density.getNodeOverIndex(uint32(len(a.pool)) - 1)
	}
	first := a.density.getIndexUnderNode(bucket)
	card := bucket.Value().cardinality
	a.pool[first+card] = v
	a.density.increaseCardinality(bucket)
	a.n++
	return int(first + card)
}

// Erase removes the live element at poolIndex.
func (a *Array[T]) Erase(poolIndex int) {
	bucket := a.density.getNodeOverIndex(uint32(poolIndex))
	first := a.density.getIndexUnderNode(bucket)
	card := bucket.Value().cardinality
	last := first + card - 1
	for i := uint32(poolIndex); i < last; i++ {
		a.relocate(i+1, i)
	}
	a.pool[last] = a.emptyV
	a.density.decreaseCardinality(bucket)
	a.n--

	if a.n > 0 && !a.density.affordsElementErasureAt(bucket) {
		parent := a.density.getParentForErasure(bucket)
		a.rearrangeInPlace(parent, nil)
	}
	if a.density.tree.Height() > 0 && !a.density.affordsErasure() {
		a.resize(a.density.tree.Height() - 1)
	}
}

// Clear removes every element and shrinks the pool back to its initial
// capacity.
func (a *Array[T]) Clear() {
	a.n = 0
	a.resetPool(0)
	a.notifyReset()
}

// Compress repacks every live element as densely as the root's density
// bounds allow, without changing the pool's height. It is useful after
// a long run of erasures has left buckets sparser than necessary.
func (a *Array[T]) Compress() {
	oldPool := a.pool
	oldDensity := a.density
	height := oldDensity.tree.Height()
	a.resetPool(height)
	harvested := harvestValues(oldDensity, oldPool, oldDensity.root())
	st := &elementStream[T]{a: a, harvested: harvested}
	a.density.compressOver(a.density.root(), st)
	a.notifyReset()
}

// Reserve ensures the array's capacity is at least n, rebuilding the
// pool at the smallest adequate power-of-two-leaves size if it is
// smaller than that; a pool that is already larger is left as it is.
func (a *Array[T]) Reserve(n int) {
	height := uint(0)
	for int(a.bucketSize<<height) < n {
		height++
	}
	if int(a.bucketSize<<height) > len(a.pool) {
		a.resize(height)
	}
}

func (a *Array[T]) relocate(src, dst uint32) {
	if src == dst {
		return
	}
	v := a.pool[src]
	for _, obs := range a.observer {
		obs.Move(int(src), int(dst), v)
		obs.Reset()
	}
	a.pool[dst] = v
}

func (a *Array[T]) rearrangeInPlace(u cbtree.Node[pmaTreeData], sparse *cbtree.Node[pmaTreeData]) {
	harvested := harvestValues(a.density, a.pool, u)
	st := &elementStream[T]{a: a, harvested: harvested}
	a.density.rearrangeOver(u, sparse, st)
	a.notifyReset()
	if a.logger != nil {
		a.logger.Debug().Uint32("subtree_size", a.density.capacity(u)).Msg("pma: rearranged subtree")
	}
}

// resize reallocates the pool at the given density-tree height,
// preserving every live element via a full harvest-and-redistribute
// pass, exactly as growing or shrinking the array does.
func (a *Array[T]) resize(newHeight uint) {
	oldPool := a.pool
	oldDensity := a.density
	a.resetPool(newHeight)
	harvested := harvestValues(oldDensity, oldPool, oldDensity.root())
	st := &elementStream[T]{a: a, harvested: harvested}
	a.density.compressOver(a.density.root(), st)
	a.notifyReset()
	if a.logger != nil {
		a.logger.Debug().Int("old_cap", len(oldPool)).Int("new_cap", len(a.pool)).Msg("pma: resized pool")
	}
}

func (a *Array[T]) notifyReset() {
	for _, obs := range a.observer {
		obs.Reset()
	}
}

type elemRef[T any] struct {
	value  T
	srcIdx int
}

// harvestValues walks the subtree rooted at u, in left-to-right leaf
// order, collecting every live element along with its current pool
// index, before any rearrangement mutates the tree or the pool.
func harvestValues[T any](d *densityTree, pool []T, u cbtree.Node[pmaTreeData]) []elemRef[T] {
	var out []elemRef[T]
	var walk func(n cbtree.Node[pmaTreeData])
	walk = func(n cbtree.Node[pmaTreeData]) {
		if n.IsLeaf() {
			first := d.getIndexUnderNode(n)
			card := n.Value().cardinality
			for i := uint32(0); i < card; i++ {
				idx := first + i
				out = append(out, elemRef[T]{value: pool[idx], srcIdx: int(idx)})
			}
			return
		}
		left, right := n, n
		left.Left()
		right.Right()
		walk(left)
		walk(right)
	}
	walk(u)
	return out
}

// elementStream implements the stream interface rearrangeOver/
// compressOver write through: it pulls harvested values in order and
// writes them into the array's (possibly freshly allocated) pool,
// notifying observers whenever a value's pool index actually changes.
type elementStream[T any] struct {
	a         *Array[T]
	harvested []elemRef[T]
	pos       int
	head      uint32
}

func (s *elementStream[T]) setAt(writehead uint32) { s.head = writehead }

func (s *elementStream[T]) writeOut(n uint32) {
	for i := uint32(0); i < n; i++ {
		ref := s.harvested[s.pos]
		s.pos++
		dst := s.head
		s.head++
		if ref.srcIdx != int(dst) {
			for _, obs := range s.a.observer {
				obs.Move(ref.srcIdx, int(dst), ref.value)
			}
		}
		s.a.pool[dst] = ref.value
	}
}

func (s *elementStream[T]) emptyOut(n uint32) {
	for i := uint32(0); i < n; i++ {
		s.a.pool[s.head] = s.a.emptyV
		s.head++
	}
}
