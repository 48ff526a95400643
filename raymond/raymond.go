package raymond

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

type msgKind int

const (
	// msgRequest asks the receiver to route the token back to the sender.
	// A local entry request carries a non-nil grant channel instead of a
	// sender id.
	msgRequest msgKind = iota

	// msgToken hands the PRIVILEGE to the receiver.
	msgToken

	// msgRelease signals that the local critical section finished.
	msgRelease
)

type message struct {
	kind  msgKind
	from  int
	grant chan struct{}
}

// waiter is one entry of a node's FIFO request queue. A non-nil grant
// marks a local waiter; otherwise id names the neighbor to pass to.
type waiter struct {
	id    int
	grant chan struct{}
}

type node struct {
	c  *Cluster
	id int

	// holder points along the tree toward the token; a node holding the
	// token points at itself.
	holder int
	asked  bool
	using  bool
	queue  []waiter

	inbox chan message
}

// Cluster simulates Raymond's algorithm on a fixed tree of nodes.
type Cluster struct {
	nodes []*node

	mu      sync.Mutex
	runCtx  context.Context
	cancel  context.CancelFunc
	group   *errgroup.Group
	started bool
	stopped bool
}

// New builds a cluster over the given tree. Each element of tree is an
// undirected edge {a, b}; node ids run from 0 to len(tree). The token
// starts at holder.
//
// Errors: ErrBadNode for an out-of-range id, ErrNotATree when the edges
// do not form a single connected acyclic graph.
func New(tree [][2]int, holder int, opts Options) (*Cluster, error) {
	n := len(tree) + 1
	if holder < 0 || holder >= n {
		return nil, fmt.Errorf("New: holder %d with %d nodes: %w", holder, n, ErrBadNode)
	}

	adj := make([][]int, n)
	for _, e := range tree {
		a, b := e[0], e[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, fmt.Errorf("New: edge {%d,%d} with %d nodes: %w", a, b, n, ErrBadNode)
		}
		if a == b {
			return nil, fmt.Errorf("New: self-loop at %d: %w", a, ErrNotATree)
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	// n-1 edges + connectivity ⇒ acyclic. BFS from the holder doubles as
	// the initialization of the holder pointers: every node points at its
	// parent on the path toward the token.
	c := &Cluster{nodes: make([]*node, n)}
	depth := 8*n + opts.Buffer
	for i := range c.nodes {
		c.nodes[i] = &node{c: c, id: i, holder: -1, inbox: make(chan message, depth)}
	}
	c.nodes[holder].holder = holder

	visited := 1
	frontier := []int{holder}
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, nb := range adj[cur] {
			if c.nodes[nb].holder != -1 {
				continue
			}
			c.nodes[nb].holder = cur
			visited++
			frontier = append(frontier, nb)
		}
	}
	if visited != n {
		return nil, fmt.Errorf("New: %d of %d nodes reachable: %w", visited, n, ErrNotATree)
	}

	return c, nil
}

// Start launches one goroutine per node. The cluster runs until Stop is
// called or ctx is cancelled.
func (c *Cluster) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || c.stopped {
		return ErrStopped
	}
	c.started = true

	runCtx, cancel := context.WithCancel(ctx)
	c.runCtx, c.cancel = runCtx, cancel
	group, gctx := errgroup.WithContext(runCtx)
	c.group = group
	for _, nd := range c.nodes {
		nd := nd
		group.Go(func() error { return nd.run(gctx) })
	}

	return nil
}

// Stop shuts every node down and waits for the goroutines to exit.
// Pending and future InCS calls fail with ErrStopped.
func (c *Cluster) Stop() error {
	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return ErrStopped
	}
	c.stopped = true
	cancel, group := c.cancel, c.group
	c.mu.Unlock()

	cancel()

	return group.Wait()
}

// InCS enters the critical section at the given node: it enqueues a
// request, blocks until the token arrives, runs fn exclusively, then
// releases. Cancelling ctx abandons the wait; an already-granted token
// is handed back internally so other waiters are not starved.
//
// Errors: ErrBadNode, ErrStopped, or ctx.Err().
func (c *Cluster) InCS(ctx context.Context, id int, fn func()) error {
	if id < 0 || id >= len(c.nodes) {
		return fmt.Errorf("InCS: node %d of %d: %w", id, len(c.nodes), ErrBadNode)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	runCtx := c.runCtx
	ok := c.started && !c.stopped
	c.mu.Unlock()
	if !ok {
		return ErrStopped
	}

	grant := make(chan struct{}, 1)
	select {
	case c.nodes[id].inbox <- message{kind: msgRequest, grant: grant}:
	case <-ctx.Done():
		return ctx.Err()
	case <-runCtx.Done():
		return ErrStopped
	}

	select {
	case <-grant:
	case <-ctx.Done():
		// The request is already queued; absorb the eventual grant and
		// hand the token back so the queue keeps draining.
		go func() {
			select {
			case <-grant:
				select {
				case c.nodes[id].inbox <- message{kind: msgRelease}:
				case <-runCtx.Done():
				}
			case <-runCtx.Done():
			}
		}()

		return ctx.Err()
	case <-runCtx.Done():
		return ErrStopped
	}

	fn()

	select {
	case c.nodes[id].inbox <- message{kind: msgRelease}:
		return nil
	case <-runCtx.Done():
		return ErrStopped
	}
}

func (n *node) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-n.inbox:
			switch m.kind {
			case msgRequest:
				if m.grant != nil {
					n.queue = append(n.queue, waiter{id: n.id, grant: m.grant})
				} else {
					n.queue = append(n.queue, waiter{id: m.from})
				}
				n.assignPrivilege(ctx)
				n.makeRequest(ctx)
			case msgToken:
				n.holder = n.id
				n.assignPrivilege(ctx)
			case msgRelease:
				n.using = false
				n.assignPrivilege(ctx)
				n.makeRequest(ctx)
			}
		}
	}
}

// assignPrivilege grants or forwards the token when this node holds it,
// is not using it, and someone is waiting.
func (n *node) assignPrivilege(ctx context.Context) {
	if n.holder != n.id || n.using || len(n.queue) == 0 {
		return
	}

	head := n.queue[0]
	n.queue = n.queue[1:]
	n.asked = false

	if head.grant != nil {
		n.using = true
		head.grant <- struct{}{}

		return
	}

	n.holder = head.id
	n.send(ctx, head.id, message{kind: msgToken})
	// Remaining waiters chase the token to its new holder.
	n.makeRequest(ctx)
}

// makeRequest forwards a single REQUEST toward the holder when the queue
// is non-empty and none is outstanding.
func (n *node) makeRequest(ctx context.Context) {
	if n.holder == n.id || n.asked || len(n.queue) == 0 {
		return
	}
	n.asked = true
	n.send(ctx, n.holder, message{kind: msgRequest, from: n.id})
}

func (n *node) send(ctx context.Context, dst int, m message) {
	select {
	case n.c.nodes[dst].inbox <- m:
	case <-ctx.Done():
	}
}
