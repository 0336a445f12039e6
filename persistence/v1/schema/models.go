package schema

const schema = `CREATE TABLE IF NOT EXISTS notes (
	id BIGINT PRIMARY KEY,
	author BIGINT,
	post_type TEXT,
	post_status TEXT,
	title TEXT,
	content TEXT,
	modified_gmt TEXT
)`

const dropSchema = `DROP TABLE notes`
