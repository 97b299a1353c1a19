// Package logtail provides the "last N lines" preview shown after a write.
//
// # Overview
//
// This package extracts the tail of a lab log and prints it under a banner so
// the user can see the entry they just added in context. It never reads the
// file forward: lines come from package revlines, newest first, and only the
// requested number of lines is buffered.
//
// # Core Functionality
//
//  1. Last: Take up to N readable lines from a reverse line sequence
//  2. Read: Open a file fresh and apply Last to it
//  3. Render: Print the banner and lines, styled with lipgloss
//
// Example usage:
//
//	lines, err := logtail.Read("/home/me/rlg.md", 6, func(err error) {
//		log.Printf("error reading line: %v", err)
//	})
//	if err != nil {
//		return err
//	}
//	_ = logtail.Render(os.Stdout, "/home/me/rlg.md", 6, lines, logtail.DefaultStyles(os.Stdout))
//
// # Algorithm
//
//  1. Pull lines from the end of the file toward the start
//  2. Report unreadable lines and skip them
//  3. Stop once N readable lines are held
//  4. Reverse the collected slice into file order
//
// Memory use is O(N × average line length), independent of file size.
//
// # Banner
//
// The banner names the requested count and the path as given:
//
//	====================| Last 6 lines of /home/me/rlg.md |====================
//
// # Colorization
//
// Lines are styled by their Markdown role:
//
//   - "# " title: cyan, bold
//   - "## " year: orange, bold
//   - "### " day: green, bold
//   - "- " entry: timestamp dimmed, text untouched
//
// DefaultStyles binds to the output writer, so piping the preview into a file
// or another program produces plain text.
//
// # Error Handling
//
// Read returns nil, nil for a file that does not exist. Other open errors are
// returned wrapped. Per-line failures never fail the preview.
package logtail
