// Package domain contains the core business entities of the WorkShop
// backend: users, their tasks, and the Pomodoro sessions they log. It has no
// knowledge of HTTP or storage.
package domain
