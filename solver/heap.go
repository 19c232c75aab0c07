/******************************************************************************************[Heap.h]
Copyright (c) 2003-2006, Niklas Een, Niklas Sorensson
Copyright (c) 2007-2010, Niklas Sorensson

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
associated documentation files (the "Software"), to deal in the Software without restriction,
including without limitation the rights to use, copy, modify, merge, publish, distribute,
sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or
substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT
OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
**************************************************************************************************/

package solver

// A heap implementation with support for decrease/increase key, strongly
// inspired from Minisat's mtl/Heap.h. Unlike a plain priority queue keyed
// purely by activity, this one is specifically the mining engine's decision
// heap (§4.4): it holds a back-reference to its owning Worker and enforces
// "only item variables are ever branched on" internally, at insert/update/
// build time, rather than leaving that restriction entirely to callers.
// This also sidesteps a slice-aliasing trap a plain activity-slice copy
// would have: w.activity and w.decisionVar keep growing (via append) as
// encodeGuidingPath allocates reifiers, so the heap must read through w
// rather than hold a snapshot that a reallocation could detach from.

type decisionHeap struct {
	w       *Worker
	content []int // actual content: variable ids
	indices []int // reverse index: position of each var in content, -1 if absent
}

func newDecisionHeap(w *Worker) decisionHeap {
	return decisionHeap{w: w}
}

func (h *decisionHeap) lt(i, j int) bool {
	return h.w.activity[i] > h.w.activity[j]
}

// isDecisionVar reports whether n is currently eligible for the heap at
// all — out of range (not yet allocated) counts as ineligible.
func (h *decisionHeap) isDecisionVar(n int) bool {
	return n >= 0 && n < len(h.w.decisionVar) && h.w.decisionVar[n]
}

func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (h *decisionHeap) percolateUp(i int) {
	x := h.content[i]
	p := parent(i)
	for i != 0 && h.lt(x, h.content[p]) {
		h.content[i] = h.content[p]
		h.indices[h.content[p]] = i
		i = p
		p = parent(p)
	}
	h.content[i] = x
	h.indices[x] = i
}

func (h *decisionHeap) percolateDown(i int) {
	x := h.content[i]
	for left(i) < len(h.content) {
		var child int
		if right(i) < len(h.content) && h.lt(h.content[right(i)], h.content[left(i)]) {
			child = right(i)
		} else {
			child = left(i)
		}
		if !h.lt(h.content[child], x) {
			break
		}
		h.content[i] = h.content[child]
		h.indices[h.content[i]] = i
		i = child
	}
	h.content[i] = x
	h.indices[x] = i
}

func (h *decisionHeap) len() int    { return len(h.content) }
func (h *decisionHeap) empty() bool { return len(h.content) == 0 }

func (h *decisionHeap) contains(n int) bool {
	return n < len(h.indices) && h.indices[n] >= 0
}

func (h *decisionHeap) decrease(n int) {
	h.percolateUp(h.indices[n])
}

func (h *decisionHeap) increase(n int) {
	h.percolateDown(h.indices[n])
}

// update repositions n if it is already queued, inserts it if it is not
// queued yet, or silently does nothing if n isn't a decision variable —
// callers no longer need to guard every call site with a decisionVar check.
func (h *decisionHeap) update(n int) {
	if !h.isDecisionVar(n) {
		return
	}
	if !h.contains(n) {
		h.insert(n)
	} else {
		h.percolateUp(h.indices[n])
		h.percolateDown(h.indices[n])
	}
}

// insert queues n, a no-op if n is not a decision variable (§4.4:
// transaction and reifier variables are never branched on).
func (h *decisionHeap) insert(n int) {
	if !h.isDecisionVar(n) {
		return
	}
	for i := len(h.indices); i <= n; i++ {
		h.indices = append(h.indices, -1)
	}
	if h.indices[n] >= 0 {
		return // already queued
	}
	h.indices[n] = len(h.content)
	h.content = append(h.content, n)
	h.percolateUp(h.indices[n])
}

func (h *decisionHeap) removeMin() int {
	x := h.content[0]
	h.content[0] = h.content[len(h.content)-1]
	h.indices[h.content[0]] = 0
	h.indices[x] = -1
	h.content = h.content[:len(h.content)-1]
	if len(h.content) > 1 {
		h.percolateDown(0)
	}
	return x
}

// build rebuilds the heap from scratch using the variables in ns, dropping
// any that aren't decision variables rather than trusting ns is already
// filtered.
func (h *decisionHeap) build(ns []int) {
	for i := range h.content {
		h.indices[h.content[i]] = -1
	}
	h.content = h.content[:0]
	for _, val := range ns {
		if !h.isDecisionVar(val) {
			continue
		}
		for j := len(h.indices); j <= val; j++ {
			h.indices = append(h.indices, -1)
		}
		h.indices[val] = len(h.content)
		h.content = append(h.content, val)
	}
	for i := len(h.content)/2 - 1; i >= 0; i-- {
		h.percolateDown(i)
	}
}
