package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "splitpane-debug.log")

// DebugEnv is the environment variable that turns debug logging on.
const DebugEnv = "SPLITPANE_DEBUG"

// InitDebug initializes debug logging if SPLITPANE_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		// Initialize DebugLog as a no-op logger to prevent nil pointer panics
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		// Fall back to no-op logger on error
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
	}
	DebugEnabled = false
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// slowFrame is one frame at 60fps.
const slowFrame = 16 * time.Millisecond

// frameWindow is how many recent frames the profiler keeps.
const frameWindow = 100

// RenderProfiler times whole frames and the named spans inside them
// ("splitview", "statusbar").
type RenderProfiler struct {
	mu     sync.Mutex
	spans  map[string]*SpanStats
	frames int64
	total  time.Duration
	recent [frameWindow]time.Duration
	next   int
	filled int
}

// SpanStats aggregates the timings of one span.
type SpanStats struct {
	Name  string
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Avg returns the mean span duration.
func (s *SpanStats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

func (s *SpanStats) add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Count++
	s.Total += d
}

var profiler = &RenderProfiler{spans: make(map[string]*SpanStats)}

// GetProfiler returns the process-wide profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender starts timing span and returns the func that stops it. It is
// a no-op unless debug mode is on.
func (p *RenderProfiler) StartRender(span string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		s, ok := p.spans[span]
		if !ok {
			s = &SpanStats{Name: span}
			p.spans[span] = s
		}
		s.add(time.Since(start))
	}
}

// RecordFrame adds one complete View call to the frame statistics.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	p.frames++
	p.total += elapsed
	p.recent[p.next] = elapsed
	p.next = (p.next + 1) % frameWindow
	if p.filled < frameWindow {
		p.filled++
	}
	p.mu.Unlock()

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("[PERF] slow frame: %v", elapsed)
	}
}

// recentFrames returns the kept frame times, oldest first. Callers hold mu.
func (p *RenderProfiler) recentFrames() []time.Duration {
	out := make([]time.Duration, 0, p.filled)
	start := (p.next - p.filled + frameWindow) % frameWindow
	for i := 0; i < p.filled; i++ {
		out = append(out, p.recent[(start+i)%frameWindow])
	}
	return out
}

// GetStats formats the collected timings, slowest span first.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	fmt.Fprintf(&sb, "frames: %d\n", p.frames)
	if p.frames > 0 {
		avg := p.total / time.Duration(p.frames)
		fmt.Fprintf(&sb, "avg frame: %v (%.1f fps)\n", avg, 1/avg.Seconds())
	}

	if recent := p.recentFrames(); len(recent) > 0 {
		sorted := append([]time.Duration(nil), recent...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p95 := sorted[(len(sorted)*95-1)/100]
		fmt.Fprintf(&sb, "last %d: min=%v p95=%v max=%v\n",
			len(sorted), sorted[0], p95, sorted[len(sorted)-1])
	}

	spans := make([]*SpanStats, 0, len(p.spans))
	for _, s := range p.spans {
		spans = append(spans, s)
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Total > spans[j].Total })

	sb.WriteString("\n--- Spans ---\n")
	for _, s := range spans {
		fmt.Fprintf(&sb, "  %s: n=%d avg=%v min=%v max=%v\n", s.Name, s.Count, s.Avg(), s.Min, s.Max)
	}
	return sb.String()
}

// LogStats writes GetStats to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset drops all timings.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spans = make(map[string]*SpanStats)
	p.frames = 0
	p.total = 0
	p.next = 0
	p.filled = 0
}


// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// DragTrace logs drag gesture events.
func DragTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[DRAG] "+format, v...)
	}
}

// RenderTrace logs render events.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		msg := fmt.Sprintf(format, v...)
		DebugLog.Printf("[RENDER:%s] %s", component, msg)
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}
