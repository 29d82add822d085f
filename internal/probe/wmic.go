package probe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// wmicProbe counts cores and processors on Windows by scraping the
// key=value output of a wmic query restricted to the two fields of
// interest. On windows builds a WMI struct query is tried first; this
// text scrape is the portable fallback.
type wmicProbe struct{}

func (p wmicProbe) Name() string { return "wmic" }

func (p wmicProbe) Probe(ctx context.Context) Result {
	output, err := exec.CommandContext(ctx, "wmic", "cpu", "get",
		"NumberOfCores,NumberOfLogicalProcessors", "/format:list").Output()
	if err != nil {
		return Result{}
	}
	return ParseWMICList(string(output))
}

// ParseWMICList reduces wmic /format:list output to the two counts.
// Each installed socket contributes one NumberOfCores and one
// NumberOfLogicalProcessors line; the counts sum across sockets. wmic
// pads its console output with CR and NUL bytes, which are stripped
// before matching.
func ParseWMICList(raw string) Result {
	raw = strings.NewReplacer("\r", "", "\x00", "").Replace(raw)

	var res Result
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch key {
		case "NumberOfCores":
			res.Cores += n
		case "NumberOfLogicalProcessors":
			res.Processors += n
		}
	}
	return res
}
