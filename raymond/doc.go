// Package raymond implements Raymond's tree-based token algorithm for
// distributed mutual exclusion (Raymond 1989), simulated with one
// goroutine per node exchanging messages over channels.
//
// 🚀 The algorithm:
//
//	The nodes form a spanning tree. Exactly one token (the PRIVILEGE)
//	exists; only its holder may enter the critical section. Every node
//	keeps three pieces of state:
//
//	  ▸ holder  — the neighbor in whose direction the token lies
//	    (itself, when it holds the token);
//	  ▸ queue   — FIFO of neighbors (or itself) waiting for the token;
//	  ▸ asked   — whether a REQUEST was already forwarded toward the
//	    holder, so request chains are never duplicated.
//
//	A node wanting the token enqueues itself and sends REQUEST toward
//	its holder. Intermediate nodes enqueue the requester and forward a
//	single REQUEST of their own. When the token arrives, it is passed to
//	the queue head; the holder pointers flip so they always point along
//	the token's path. Requests cost O(log n) messages on balanced trees.
//
// ✨ Guarantees:
//
//	▸ safety   — at most one node runs its critical section at any time;
//	▸ liveness — FIFO queues make every request eventually granted.
//
// ⚙️ Usage:
//
//	c, err := raymond.New([][2]int{{0, 1}, {1, 2}}, 0, raymond.DefaultOptions())
//	c.Start(ctx)
//	err = c.InCS(ctx, 2, func() { /* exclusive work */ })
//	_ = c.Stop()
//
// Performance: O(log n) messages per entry on balanced trees, O(n) worst
// case on a path.
package raymond
