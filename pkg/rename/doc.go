/*
Package rename implements the core bulk-rename pipeline for renamerc.

	+-----------+    +-----------+    +-----------+    +-----------+
	| Discovery | -> |   Pairs   | -> | Conflicts | -> |   Apply   |
	|  (walk)   |    | (compute) |    |  (gate)   |    | (mutate)  |
	+-----------+    +-----------+    +-----------+    +-----------+

🎯 Purpose:
- Discovers candidate regular files under a root directory
- Computes rename pairs by literal substring substitution on filenames
- Detects existing-target and duplicate-target conflicts across the batch
- Applies renames per-item, best-effort, with classified failures

🔄 Flow:
1. BuildPlan runs the three read-only stages and returns a Plan
2. The caller inspects Plan.Conflicts and renders a preview
3. A batch with conflicts is never applied (all-or-nothing gate)
4. Apply is a separate call so dry-run and confirmation can sit in between

⚡ Key Responsibilities:
- No data loss: a batch with any conflict is fully rejected
- No silent overwrite: targets are re-checked right before each rename
- Deterministic ordering: output order follows discovery order

📝 Design Philosophy:
Each stage is a plain function over slices of paths, independently testable
with a temp directory. Only Apply mutates the filesystem; everything before
it is read-only so dry-run falls out for free.
*/
package rename
