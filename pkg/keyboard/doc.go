// Package keyboard builds Telegram inline and reply keyboards:
//   - Immutable fluent builders for Button and ReplyButton
//   - Keyboard / ReplyKeyboard with row packing by fractional button width
//   - Lossless export to / import from wire structures (map[string]any, JSON)
//   - Callback data helpers ("key:value;key:value")
//   - Conversion to and from telebot's ReplyMarkup
//
// Rows are never stored. Every button carries a width in (0, 1] and rows are
// rebuilt on export from the running sum of widths (see Pack). Row(...) gives
// each of its N buttons a width of 1/N, so they land on one row.
//
// All values are immutable: every method returns a new value and never
// modifies the receiver, so keyboards can be derived from a shared base and
// used from several goroutines.
package keyboard
