package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/busoc/wc"
	"github.com/juju/ratelimit"
	"github.com/midbel/glob"
	"github.com/midbel/toml"
	"github.com/midbel/wip"
	"golang.org/x/sync/semaphore"
)

type Location struct {
	Pattern string
}

type result struct {
	File string
	wc.Counts
}

func main() {
	quiet := flag.Bool("q", false, "quiet")
	flag.Parse()

	if *quiet {
		log.SetOutput(ioutil.Discard)
	}

	c := struct {
		Jobs      int64
		Limit     int64
		Locations []Location `toml:"location"`
	}{}
	if err := toml.DecodeFile(flag.Arg(0), &c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	files, err := collectFiles(c.Locations)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var rs []result
	if c.Jobs <= 1 {
		rs = singleJob(files, c.Limit, *quiet)
	} else {
		rs = multiJobs(files, c.Jobs, c.Limit)
	}

	var total wc.Counts
	for _, r := range rs {
		wc.Fprint(os.Stdout, r.Counts, r.File)
		total = total.Add(r.Counts)
	}
	wc.Fprint(os.Stdout, total, wc.TotalLabel)
}

func collectFiles(locations []Location) ([]string, error) {
	var files []string
	for _, loc := range locations {
		src, err := glob.New(loc.Pattern)
		if err != nil {
			return nil, err
		}
		for {
			file := src.Glob()
			if file == "" {
				break
			}
			files = append(files, file)
		}
	}
	return files, nil
}

func singleJob(files []string, limit int64, quiet bool) []result {
	var rs []result
	for _, f := range files {
		c, err := countFile(f, limit, !quiet)
		if err != nil {
			log.Printf("skip file: %s: %s", f, err)
			continue
		}
		rs = append(rs, result{File: f, Counts: c})
	}
	return rs
}

func multiJobs(files []string, jobs, limit int64) []result {
	var (
		ctx  = context.TODO()
		sema = semaphore.NewWeighted(jobs)
		mu   sync.Mutex
		rs   []result
	)
	for i := range files {
		if err := sema.Acquire(ctx, 1); err != nil {
			log.Println(err)
			break
		}
		go func(file string) {
			defer sema.Release(1)
			log.Printf("begin count file: %s", file)
			c, err := countFile(file, limit, false)
			if err != nil {
				log.Printf("skip file: %s: %s", file, err)
				return
			}
			log.Printf("end count file: %s (%d bytes)", file, c.Bytes)
			mu.Lock()
			rs = append(rs, result{File: file, Counts: c})
			mu.Unlock()
		}(files[i])
	}
	if err := sema.Acquire(ctx, jobs); err != nil {
		log.Println(err)
	}

	sort.Slice(rs, func(i, j int) bool { return rs[i].File < rs[j].File })
	return rs
}

func countFile(file string, limit int64, progress bool) (wc.Counts, error) {
	r, err := wc.OpenFile(file)
	if err != nil {
		return wc.Counts{}, err
	}
	defer r.Close()

	var rs io.Reader = r
	if limit > 0 {
		rs = ratelimit.Reader(rs, ratelimit.NewBucketWithRate(float64(limit), limit))
	}
	if progress {
		if t, err := newTracker(file); err == nil {
			rs = io.TeeReader(rs, t)
			defer fmt.Println()
		}
	}
	return wc.Scan(rs)
}

type tracker struct {
	bar  *wip.Bar
	curr int64
}

func newTracker(file string) (*tracker, error) {
	i, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	bar, err := wip.New(i.Size(), wip.WithLabel(filepath.Base(file)))
	if err != nil {
		return nil, err
	}
	t := tracker{
		bar: bar,
	}
	return &t, nil
}

func (t *tracker) Write(bs []byte) (int, error) {
	n := len(bs)
	t.curr += int64(n)
	t.bar.Update(t.curr)
	return n, nil
}
