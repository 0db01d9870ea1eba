// Package reconcile computes what to do with redundant items held across one or more accounts.
//
// The engine never executes trades. It turns a combined inventory into a Plan:
// which items are duplicated, which surplus copies could go to other accounts that
// lack them, and how the remaining surplus pairs up into crafts worth currency.
//
// # Architecture
//
// The engine is a straight pipeline over a single TradePool:
//
// 1. DetectDuplicates groups items by canonical index and keeps the tradable copies.
//    When every copy of an item is tradable one is withheld, so an owner never loses
//    their only copy.
//
// 2. Allocate walks recipients in order and hands each one copy of every item in
//    their need set while the pool still has one. Earlier recipients win scarce items.
//
// 3. Craft collapses the leftover pool into affinity classes and searches, with
//    memoization over the remaining per-class counts, for the largest set of pairs
//    whose affinity sets intersect.
//
// 4. Convert turns the pair count into high, mid and low currency tiers.
//
// # Determinism
//
// Every step iterates in a fixed order (first appearance for groups, need-set order for
// recipients, name order for craft classes) so identical inputs always give identical plans.
//
// # Usage Example
//
//	run := reconcile.NewRun(catalog, logger)
//	plan, err := run.Plan(items, recipients, reconcile.Options{Allocate: true, Craft: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(plan.Summary.Pairs, plan.Value.High)
package reconcile
