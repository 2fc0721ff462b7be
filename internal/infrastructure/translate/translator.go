package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/despensa/backend/internal/domain"
)

// The remote API is asked to translate "grocery item: <term>" so short
// ambiguous words resolve in a food context; the prefix is stripped from the
// answer in either language.
var contextPrefixRegex = regexp.MustCompile(`(?i)^(grocery item: |artículo comestible: )`)

// Translator resolves grocery terms through the offline dictionary first and
// falls back to the Google Translate v2 REST endpoint for unknown terms.
type Translator struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
}

// NewTranslator creates a new translator. An empty apiKey disables the
// remote fallback; only dictionary terms translate.
func NewTranslator(apiURL, apiKey string) *Translator {
	return &Translator{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

// Translate translates text into the target language. Dictionary hits are
// answered offline for Spanish targets; everything else goes to the remote
// API. The error is a TranslationFailure the caller can degrade on.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	if targetLanguage == "es" {
		if match, ok := foodDictionary[strings.ToLower(strings.TrimSpace(text))]; ok {
			return match, nil
		}
	}

	if t.apiKey == "" {
		return "", fmt.Errorf("%w: no API key configured", domain.ErrTranslationFailure)
	}

	return t.translateRemote(ctx, text, targetLanguage)
}

// googleTranslateResponse mirrors the v2 REST response envelope.
type googleTranslateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// translateRemote calls the Google Translate v2 REST endpoint.
func (t *Translator) translateRemote(ctx context.Context, text, targetLanguage string) (string, error) {
	form := url.Values{}
	form.Set("q", "grocery item: "+text)
	form.Set("target", targetLanguage)
	form.Set("format", "text")

	reqURL := fmt.Sprintf("%s?key=%s", t.apiURL, url.QueryEscape(t.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationFailure, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", domain.ErrTranslationFailure, resp.StatusCode)
	}

	var translateResp googleTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&translateResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslationFailure, err)
	}

	if len(translateResp.Data.Translations) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrTranslationFailure)
	}

	translated := contextPrefixRegex.ReplaceAllString(translateResp.Data.Translations[0].TranslatedText, "")
	translated = strings.TrimSpace(translated)

	log.Printf("[TRANSLATE] remote translation %q -> %q (%s)", text, translated, targetLanguage)

	return translated, nil
}
