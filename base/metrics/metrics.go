/*Package metrics wraps datadog-go to facilitate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- Error: *.err
- Counter: plain key
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/mintfolio/settleapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before flushing to the statsd agent
	bufferMetrics = 10

	ddPort = 8125
)

// Ender finishes a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides the metric recording interface
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce sync.Once
	ddClient statsCli
)

func initDDClient() {
	addr := fmt.Sprintf("%s:%d", viper.GetString("datadog_host"), ddPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics fall back to logs")
		ddClient = &logClient{}
		return
	}
	ddClient = cli
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &impl{
		pkgName: pkgName,
		ddTags: []string{
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type impl struct {
	pkgName string
	ddTags  []string
}

// BumpSum bumps the sum for the given key.
func (mt *impl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	k := mt.pkgName + "." + key
	if err := ddClient.Count(k, int64(val), append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": k}).Error("bump failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *impl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	k := mt.pkgName + "." + key
	if err := ddClient.Histogram(k, val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": k}).Error("bump failed")
	}
}

// BumpTime starts a timer for the given key. Calling End() on the returned
// value records the elapsed time:
//
//     defer s.BumpTime("my.function").End()
func (mt *impl) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + "." + key,
		tags:  append(mt.ddTags, parseTag(tags)...),
	}
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	dur := float64(d) / float64(time.Millisecond)
	if err := ddClient.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur}).Error("bump failed")
	}
}
