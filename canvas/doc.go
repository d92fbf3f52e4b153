// Package canvas provides a region-based asynchronous rendering
// engine for terminal interfaces.
//
// A Canvas owns a set of named rectangular regions, a message queue,
// and a single render goroutine. Producers on any goroutine mutate
// regions through the Regions façade; mutations enqueue messages and
// return immediately. The render goroutine applies messages, marks
// regions dirty, and paints every dirty region once per frame inside
// a synchronized-update envelope, flushing the output stream exactly
// once per frame.
//
// Architecture:
//
//	producers ──> Regions façade ──> message queue ──┐
//	                                                 ▼
//	                              render goroutine (sole writer)
//	                                 │ apply mutations
//	                                 │ collapse burst into one frame
//	                                 ▼
//	                       Renderer ──> term.Terminal ──> output
//
// Usage:
//
//	c := canvas.New(os.Stdout, canvas.WithFPS(30))
//	c.DefineRegion("log", 0, 0, 40, 10, canvas.WithBorder())
//	if err := c.Start(true); err != nil {
//		log.Fatal(err)
//	}
//	c.Regions().Append("log", "hello\n")
//	defer c.Stop()
package canvas
