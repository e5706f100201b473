package db

import (
	"database/sql"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

var Db *sql.DB

func InitDB() error {
	ddb, err := sql.Open("sqlite3", os.Getenv("DB_PATH"))
	if err != nil {
		return err
	}

	if _, err := ddb.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return err
	}

	if _, err := ddb.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return err
	}

	tx, err := ddb.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE nocase,
		email TEXT NOT NULL UNIQUE,
		pw TEXT NOT NULL,
		avatar TEXT,
		bio TEXT,
		github_url TEXT,
		website_url TEXT,
		join_ts INTEGER NOT NULL,
		update_ts INTEGER NOT NULL
	)`); err != nil {
		return err
	}

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS auth_tokens (
		id INTEGER PRIMARY KEY,
		user INTEGER NOT NULL,
		token TEXT NOT NULL,
		expiration_ts INTEGER NOT NULL
	)`); err != nil {
		return err
	}

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY,
		author INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		image TEXT,
		repo_url TEXT NOT NULL,
		demo_url TEXT,
		tags TEXT,
		like_count INTEGER NOT NULL DEFAULT 0,
		comment_count INTEGER NOT NULL DEFAULT 0,
		create_ts INTEGER NOT NULL,
		update_ts INTEGER NOT NULL
	)`); err != nil {
		return err
	}

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS project_likes (
		id INTEGER PRIMARY KEY,
		user INTEGER NOT NULL,
		project INTEGER NOT NULL,
		UNIQUE(user, project)
	)`); err != nil {
		return err
	}

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY,
		content TEXT NOT NULL,
		author INTEGER NOT NULL,
		project INTEGER NOT NULL,
		reply_to INTEGER,
		like_count INTEGER NOT NULL DEFAULT 0,
		create_ts INTEGER NOT NULL,
		update_ts INTEGER NOT NULL
	)`); err != nil {
		return err
	}

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS comment_likes (
		id INTEGER PRIMARY KEY,
		user INTEGER NOT NULL,
		comment INTEGER NOT NULL,
		UNIQUE(user, comment)
	)`); err != nil {
		return err
	}

	if _, err = tx.Exec(`CREATE TABLE IF NOT EXISTS uploads (
		id TEXT NOT NULL PRIMARY KEY,
		bucket TEXT NOT NULL,
		hash TEXT NOT NULL,
		filename TEXT NOT NULL,
		mime TEXT NOT NULL,
		uploader INTEGER NOT NULL,
		upload_ts INTEGER NOT NULL,
		width INTEGER,
		height INTEGER
	)`); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	Db = ddb

	return nil
}
