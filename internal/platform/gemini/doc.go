// Package gemini turns an exam analysis and its study roadmap into a short
// coaching narrative using the Google Gemini API.
//
// The Coach renders a prompt from the analysis, calls the model with
// exponential backoff on transient failures and returns the concatenated text
// parts of the first candidate. Safety blocks and malformed responses are
// permanent and never retried.
package gemini
