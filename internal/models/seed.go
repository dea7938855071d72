package models

var seedTracks = []Track{
	{ID: 1, SongName: "Midnight Dreams", UserName: "Alex Johnson", FileName: "midnight_dreams.mp3", FilePath: "/uploads/midnight_dreams.mp3", FileSize: "8.2 MB", Duration: "3:45", UploadDate: "2024-01-15", Genre: "Electronic"},
	{ID: 2, SongName: "Summer Vibes", UserName: "Sarah Chen", FileName: "summer_vibes.mp3", FilePath: "/uploads/summer_vibes.mp3", FileSize: "9.8 MB", Duration: "4:12", UploadDate: "2024-01-14", Genre: "Pop"},
	{ID: 3, SongName: "Urban Beat", UserName: "Mike Rodriguez", FileName: "urban_beat.mp3", FilePath: "/uploads/urban_beat.mp3", FileSize: "6.5 MB", Duration: "2:58", UploadDate: "2024-01-13", Genre: "Hip-Hop"},
	{ID: 4, SongName: "Acoustic Memories", UserName: "Emma Wilson", FileName: "acoustic_memories.mp3", FilePath: "/uploads/acoustic_memories.mp3", FileSize: "12.1 MB", Duration: "5:23", UploadDate: "2024-01-12", Genre: "Folk"},
	{ID: 5, SongName: "Digital Waves", UserName: "David Kim", FileName: "digital_waves.mp3", FilePath: "/uploads/digital_waves.mp3", FileSize: "7.4 MB", Duration: "3:30", UploadDate: "2024-01-11", Genre: "Ambient"},
	{ID: 6, SongName: "Jazz Fusion", UserName: "Lisa Brown", FileName: "jazz_fusion.mp3", FilePath: "/uploads/jazz_fusion.mp3", FileSize: "14.2 MB", Duration: "6:15", UploadDate: "2024-01-10", Genre: "Jazz"},
}

// SeedTracks returns a copy of the built-in catalogue.
func SeedTracks() []Track {
	out := make([]Track, len(seedTracks))
	copy(out, seedTracks)
	return out
}

// IsSeed reports whether id belongs to a built-in track.
func IsSeed(id int64) bool {
	for _, t := range seedTracks {
		if t.ID == id {
			return true
		}
	}
	return false
}

// MergeSeeds returns the seed catalogue followed by stored.
func MergeSeeds(stored []Track) []Track {
	return append(SeedTracks(), stored...)
}
