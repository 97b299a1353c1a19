// Package revlines reads the lines of a file from the end toward the start.
//
// # Overview
//
// A Scanner walks an io.ReadSeeker backward in fixed-size chunks and splits
// on '\n', so only the chunk being examined and the partial line that spans
// chunk boundaries are held in memory. This keeps "what is the last entry?"
// and "show me the last N lines" cheap on logs of any size.
//
// Example usage:
//
//	f, err := os.Open(path)
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	for line, err := range revlines.New(f).Lines() {
//		if err != nil {
//			log.Printf("skip line: %v", err)
//			continue
//		}
//		fmt.Println(line)
//	}
//
// # Line Rules
//
//   - An empty file yields nothing
//   - A trailing '\n' does not produce an empty last line
//   - A final line without a terminator is still yielded
//   - "\r\n" endings are reported without the '\r'
//
// # Errors
//
// A line that is not valid UTF-8 is yielded as a *DecodeError and the scan
// moves on to the previous line. A seek or read failure is yielded once and
// ends the sequence.
//
// # Single Pass
//
// The cursor only moves toward the start of the file. Calling Lines again
// resumes where the previous loop stopped; it never restarts. Two independent
// scans need two Scanners, each over its own reader.
package revlines
