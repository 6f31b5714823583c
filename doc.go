// Package arcreplacer implements a buffer-pool page [Replacer]
// using the Adaptive Replacement Cache (ARC) algorithm.
//
// ARC balances recency and frequency by keeping two resident lists
// and two identity-only "ghost" lists of recently evicted pages,
// and by adapting how much of the pool the recency side should occupy
// whenever a ghost list is hit.
//
// The following is a summary (intended for maintainers)
// of the [ARC paper], as adapted for a buffer pool whose
// frames may be pinned (not evictable) at any moment.
//
// Glossary and invariants:
//
//   - Frame
//
//     Physical slot of the buffer pool, holding one page.
//
//   - Entry
//
//     A (frame, page) pairing; the frame currently holding the page.
//
//   - Recent list (T1)
//
//     Resident entries seen once recently; front is the newest.
//
//   - Frequent list (T2)
//
//     Resident entries seen two or more times; front is the newest.
//
//   - Recent ghost (B1), Frequent ghost (B2)
//
//     Page identities evicted from T1 and T2 respectively.
//     A hit in either is a "regretted" eviction.
//
//   - Evictable
//
//     A resident frame the pool has unpinned.
//     Only evictable frames may be reclaimed.
//
//   - Dirty
//
//     Bookkeeping for the pool; never consulted by eviction.
//
// Operations:
//
//   - Access
//
//     A resident entry moves to the front of T2.
//     A page found in B1 grows the target, a page found in B2 shrinks it;
//     either way the page returns at the front of T2.
//     Anything else enters the front of T1, dropping the oldest ghost
//     of B1 (if T1 + B1 is full) or of B2 (if all history is full).
//
//   - Eviction
//
//     T1 is scanned first while its length is at least the target,
//     otherwise T2 is. Each list is scanned oldest first and the first
//     evictable entry is demoted to the front of its ghost list.
//     If the preferred list has no evictable entry, the other is scanned.
//
//   - Removal
//
//     Deleting a page erases its entry and every ghost of it;
//     no history is kept.
//
// Counts and targets:
//
//   - |T1| + |B1| ≤ capacity.
//
//   - |T1| + |T2| + |B1| + |B2| ≤ 2 * capacity.
//
//     History is bounded so adaptation never grows without limit.
//
//   - target ∈ [0, capacity].
//
//     On a B1 hit the target grows by 1 while B1 is at least as long as B2,
//     otherwise by |B2|/|B1|. On a B2 hit it shrinks by 1 while B2 is at
//     least as long as B1, otherwise by |B1|/|B2|. Results are clamped
//     to the range; an empty divisor means no adjustment.
//
// Building with the `arcreplacer_debug` tag verifies
// these invariants after every mutating call.
//
// [ARC paper]: https://www.usenix.org/conference/fast-03/arc-self-tuning-low-overhead-replacement-cache
package arcreplacer
