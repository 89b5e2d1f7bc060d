/*
Package status formats rename pipeline output for the terminal.

	+-----------+           +-----------+
	|   Plan    |  ------>  | Formatter |
	| (renames) |           | (strings) |
	+-----------+           +-----------+

🎯 Purpose:
- Formats proposed pairs, conflict reports, results, and summaries
- Keeps color an explicit Config value, never process-global state
- Stays pure: strings in, strings out, no I/O

📝 Design Philosophy:
Rendering is separated from the pipeline so the core stays testable without
a terminal, and the formatter is testable without a filesystem.
*/
package status
