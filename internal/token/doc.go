// Package token defines the lexical token kinds of the Spark-SQL-like dialect,
// the keyword table, and the trivia model used to carry comments through the
// formatting pipeline.
package token
