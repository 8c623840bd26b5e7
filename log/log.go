// Package log provides a minimal key-value logger used to report declaration
// validation results.
package log

import (
	"fmt"
	"log"
	"strings"
)

var Root Logger = &Std{}

// Logger is the logger interface. The variadic arguments are key value pairs.
// The key must be a string and the value should have a meaningful string
// representation.
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
	Crit(string, ...interface{})
	With(...interface{}) Logger
}

// Std logs to the standard library logger with a level prefix and tags.
type Std struct {
	Tags []interface{}
}

func (l *Std) Debug(m string, s ...interface{}) { log.Println(format("DEB", m, s, l.Tags)) }
func (l *Std) Error(m string, s ...interface{}) { log.Println(format("ERR", m, s, l.Tags)) }
func (l *Std) Crit(m string, s ...interface{})  { log.Println(format("CRI", m, s, l.Tags)) }
func (l *Std) With(tags ...interface{}) Logger  { return l.with(tags) }
func (l *Std) with(tags []interface{}) *Std {
	t := make([]interface{}, 0, len(tags)+len(l.Tags))
	t = append(t, tags...)
	t = append(t, l.Tags...)
	return &Std{Tags: t}
}

func format(lvl, msg string, all ...[]interface{}) string {
	var b strings.Builder
	b.WriteString(lvl)
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, tags := range all {
		for i := 0; i+1 < len(tags); i += 2 {
			b.WriteByte(' ')
			b.WriteString(fmt.Sprint(tags[i]))
			b.WriteByte('=')
			b.WriteString(fmt.Sprint(tags[i+1]))
		}
	}
	return b.String()
}
