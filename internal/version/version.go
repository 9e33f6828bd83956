package version

const Value = "1.0.0"

// BrowserUserAgent is sent on page fetches. Sites commonly serve reduced or
// blocked responses to unknown clients, so the fetcher identifies as a browser.
func BrowserUserAgent() string {
	return "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
}

func AnalyzerUserAgent() string {
	return "accessibility-analyzer/" + Value
}
