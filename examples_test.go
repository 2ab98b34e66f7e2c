package nwav

import (
	"fmt"
	"log"
)

func ExampleChunks() {
	buf := riffFile(
		chunkBytes("fmt ", cdQualityFmt()),
		chunkBytes("data", audioBytes(8)),
	)

	chunks, err := Chunks(buf)
	if err != nil {
		log.Fatal(err)
	}

	for _, c := range chunks {
		fmt.Println(c)
	}
	// Output:
	// RIFF @8 (4 bytes)
	// fmt  @20 (16 bytes)
	// data @44 (8 bytes)
}

func ExampleDecodeByName() {
	buf := riffFile(
		chunkBytes("fmt ", cdQualityFmt()),
		chunkBytes("data", audioBytes(8)),
	)

	chunk, err := DecodeByName(buf, "fmt ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(chunk)
	// Output: compression=1 channels=2 sample_rate=44100 byte_rate=176400 block_align=4 bits_per_sample=16
}

func ExampleParseInfoList() {
	payload := infoPayload(infoPair{"INAM", "Test"}, infoPair{"IART", "Me"})

	entries, err := ParseInfoList(payload)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range entries {
		fmt.Printf("%s=%s\n", e.Key, e.Value)
	}
	// Output:
	// INAM=Test
	// IART=Me
}

func ExampleFile_Info() {
	info, err := New(metadataFile()).Info()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d channels, %d Hz, %s, %q by %q\n",
		info.Format.NumChannels, info.Format.SampleRate, info.Duration,
		info.Metadata.Title, info.Metadata.Artist)
	// Output: 2 channels, 44100 Hz, 250ms, "track title" by "artist"
}
