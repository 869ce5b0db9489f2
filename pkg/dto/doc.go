// Package dto holds the incoming Telegram objects a keyboard-driven bot deals
// with: the user pressing a button, the chat, the message carrying the
// keyboard and the callback query produced by the press.
//
// Every type can be built from decoded update data (FromMap, validated with
// pkg/validate) or directly with encoding/json, and exported back with ToMap,
// which leaves empty optional fields out.
package dto
