package kahuna

import (
	"sync"

	countrylookup "github.com/statsig-io/ip3country-go"
	"github.com/ua-parser/uap-go/uaparser"
)

// deviceLookup resolves the reporting device's country (from its IP) and its
// family/OS (from its user agent) for the request metadata. Both datasets
// load in the background so client construction stays cheap.
type deviceLookup struct {
	countries      *countrylookup.CountryLookup
	parser         *uaparser.Parser
	wg             sync.WaitGroup
	countryOptions IPCountryOptions
	uaOptions      UAParserOptions
	mu             sync.RWMutex
}

func newDeviceLookup(countryOptions IPCountryOptions, uaOptions UAParserOptions) *deviceLookup {
	lookup := &deviceLookup{
		countryOptions: countryOptions,
		uaOptions:      uaOptions,
	}
	lookup.delayedSetup()
	return lookup
}

func (d *deviceLookup) delayedSetup() {
	if !d.countryOptions.Disabled {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.mu.Lock()
			d.countries = countrylookup.New()
			d.mu.Unlock()
		}()
	}
	if !d.uaOptions.Disabled {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.mu.Lock()
			d.parser = uaparser.NewFromSaved()
			d.mu.Unlock()
		}()
	}
}

func (d *deviceLookup) init() {
	if !d.countryOptions.LazyLoad || !d.uaOptions.LazyLoad {
		d.wg.Wait()
	}
}

func (d *deviceLookup) lookupIP(ip string) (string, bool) {
	if d.countryOptions.Disabled || ip == "" {
		return "", false
	}
	if d.countryOptions.EnsureLoaded {
		d.wg.Wait()
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.countries == nil {
		return "", false
	}
	return d.countries.LookupIp(ip)
}

func (d *deviceLookup) parseUserAgent(ua string) *uaparser.Client {
	if d.uaOptions.Disabled || ua == "" {
		return nil
	}
	if d.uaOptions.EnsureLoaded {
		d.wg.Wait()
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.parser == nil {
		return nil
	}
	return d.parser.Parse(ua)
}
