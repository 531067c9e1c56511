package model

import "time"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedBooks fills an empty catalog.
func SeedBooks() []CatalogBook {
	return []CatalogBook{
		{Name: "Pride and Prejudice", Author: "Jane Austen", Category: "Classic", Published: date(1813, time.January, 28)},
		{Name: "Frankenstein", Author: "Mary Shelley", Category: "Gothic", Published: date(1818, time.January, 1)},
		{Name: "Jane Eyre", Author: "Charlotte Brontë", Category: "Classic", Published: date(1847, time.October, 16)},
		{Name: "Moby-Dick", Author: "Herman Melville", Category: "Adventure", Published: date(1851, time.October, 18)},
		{Name: "Crime and Punishment", Author: "Fyodor Dostoevsky", Category: "Classic", Published: date(1866, time.January, 1)},
		{Name: "The Adventures of Sherlock Holmes", Author: "Arthur Conan Doyle", Category: "Mystery", Published: date(1892, time.October, 14)},
		{Name: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Classic", Published: date(1925, time.April, 10)},
		{Name: "Brave New World", Author: "Aldous Huxley", Category: "Science Fiction", Published: date(1932, time.January, 1)},
		{Name: "The Hobbit", Author: "J.R.R. Tolkien", Category: "Fantasy", Published: date(1937, time.September, 21)},
		{Name: "And Then There Were None", Author: "Agatha Christie", Category: "Mystery", Published: date(1939, time.November, 6)},
		{Name: "Nineteen Eighty-Four", Author: "George Orwell", Category: "Science Fiction", Published: date(1949, time.June, 8)},
		{Name: "The Catcher in the Rye", Author: "J.D. Salinger", Category: "Fiction", Published: date(1951, time.July, 16)},
		{Name: "Fahrenheit 451", Author: "Ray Bradbury", Category: "Science Fiction", Published: date(1953, time.October, 19)},
		{Name: "To Kill a Mockingbird", Author: "Harper Lee", Category: "Fiction", Published: date(1960, time.July, 11)},
		{Name: "Dune", Author: "Frank Herbert", Category: "Science Fiction", Published: date(1965, time.August, 1)},
		{Name: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", Category: "Magical Realism", Published: date(1967, time.May, 30)},
		{Name: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Category: "Science Fiction", Published: date(1969, time.March, 1)},
		{Name: "Beloved", Author: "Toni Morrison", Category: "Fiction", Published: date(1987, time.September, 2)},
		{Name: "The Name of the Wind", Author: "Patrick Rothfuss", Category: "Fantasy", Published: date(2007, time.March, 27)},
		{Name: "The Martian", Author: "Andy Weir", Category: "Science Fiction", Published: date(2011, time.September, 27)},
	}
}
