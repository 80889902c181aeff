// Package binance provides a typed client for the Binance spot REST API.
//
// Two client variants share one transport session: Client holds no
// credentials and accepts them per private call, which suits managing
// multiple accounts; AccountClient binds one key pair at construction.
package binance
