package cell

import (
	"bufio"
	"net/http/httptest"
	"strings"

	"github.com/louisbranch/tracecell/internal/services/cell/observability/metrics"
)

// gatherNames scrapes m and returns the metric family names present.
func gatherNames(m *metrics.Metrics) (map[string]bool, error) {
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	names := map[string]bool{}
	scanner := bufio.NewScanner(rec.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "# TYPE ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			names[fields[2]] = true
		}
	}
	return names, scanner.Err()
}
